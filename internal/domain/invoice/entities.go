package invoice

import (
	"time"

	"zoo-procure-hub/internal/domain/apperr"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/user"
)

type Status string

const (
	StatusSent                Status = "Sent"
	StatusPendingVerification Status = "Pending Verification"
	StatusVerified            Status = "Verified"
	StatusPaid                Status = "Paid"
	StatusDiscrepancy         Status = "Discrepancy"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSent, StatusPendingVerification, StatusVerified, StatusPaid, StatusDiscrepancy:
		return true
	}
	return false
}

var (
	ErrNotFound          = apperr.NotFound("Invoice not found")
	ErrAlreadyExists     = apperr.Conflict("An invoice already exists for this order")
	ErrInvalidTransition = apperr.InvalidTransition("Invoice status transition not allowed")
	ErrInvalidStatus     = apperr.Validation("Invalid invoice status")
	ErrEmptyDiscrepancy  = apperr.Validation("Discrepancy text is required")
	ErrOrderNotFound     = apperr.Validation("Order must reference an existing order")
	ErrOrderNotDelivered = apperr.InvalidTransition("Invoices are generated for delivered orders only")
	ErrInvalidAmount     = apperr.Validation("Amount must be greater than or equal to 0")
	ErrSupplierMismatch  = apperr.Forbidden("Order belongs to another supplier")
)

// DefaultCustomer is used when the requester has no display name.
const DefaultCustomer = "Zoo Customer"

// PaymentTerm is the gap between receipt and due date on generated invoices.
const PaymentTerm = 30 * 24 * time.Hour

type Invoice struct {
	ID                string       `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	InvoiceID         string       `gorm:"column:invoice_id;size:40;not null;uniqueIndex:ux_invoices_invoice_id" json:"invoiceId"`
	OrderRef          string       `gorm:"column:order_id;type:char(32);not null;uniqueIndex:ux_invoices_order_id" json:"orderId"`
	Order             *order.Order `gorm:"foreignKey:OrderRef;references:ID" json:"order,omitempty"`
	SupplierID        string       `gorm:"column:supplier_id;type:char(32);not null;index:idx_invoices_supplier" json:"supplierId"`
	Supplier          *user.User   `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	Customer          string       `gorm:"column:customer;size:128;not null" json:"customer"`
	Amount            float64      `gorm:"column:amount;type:decimal(20,5);not null" json:"amount"`
	Items             string       `gorm:"column:items;type:text;not null" json:"items"`
	Status            Status       `gorm:"column:status;size:24;not null;default:'Sent';index:idx_invoices_status" json:"status"`
	InvoiceNumber     string       `gorm:"column:invoice_number;size:32" json:"invoiceNumber,omitempty"`
	ReceivedDate      time.Time    `gorm:"column:received_date;not null" json:"receivedDate"`
	DueDate           time.Time    `gorm:"column:due_date;not null" json:"dueDate"`
	VerifiedDate      *time.Time   `gorm:"column:verified_date" json:"verifiedDate,omitempty"`
	VerifiedByID      *string      `gorm:"column:verified_by_id;type:char(32)" json:"verifiedById,omitempty"`
	VerifiedBy        *user.User   `gorm:"foreignKey:VerifiedByID;references:ID" json:"verifiedBy,omitempty"`
	Discrepancies     []string     `gorm:"column:discrepancies;type:text;serializer:json" json:"discrepancies"`
	VerificationNotes string       `gorm:"column:verification_notes;type:text" json:"verificationNotes,omitempty"`
	CreatedAt         time.Time    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Invoice) TableName() string { return "invoices" }

type Filter struct {
	SupplierID string
	Status     Status
}

type StatusStat struct {
	Status      Status  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
