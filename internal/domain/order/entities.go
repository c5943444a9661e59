package order

import (
	"time"

	"zoo-procure-hub/internal/domain/apperr"
	"zoo-procure-hub/internal/domain/user"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusReceived  Status = "Received"
	StatusAccepted  Status = "Accepted"
	StatusDelivered Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusReceived, StatusAccepted, StatusDelivered:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

var (
	ErrNotFound          = apperr.NotFound("Order not found")
	ErrInvalidTransition = apperr.InvalidTransition("Order status transition not allowed")
	ErrNotAllowed        = apperr.Forbidden("Not allowed to change this order status")
	ErrStatusChanged     = apperr.Conflict("Order status was changed by another request")
	ErrInvalidSupplier   = apperr.Validation("Supplier must reference an active supplier user")
	ErrInvalidRequester  = apperr.Validation("Requester must reference an existing user")
	ErrInvalidQuantity   = apperr.Validation("Quantity must be greater than 0.1")
	ErrInvalidPrice      = apperr.Validation("Price must be greater than or equal to 0")
	ErrInvalidStatus     = apperr.Validation("Invalid order status")
	ErrInvalidPriority   = apperr.Validation("Invalid order priority")
	ErrMissingFields     = apperr.Validation("itemName, reason, supplier and feedType are required")
	ErrHasInvoice        = apperr.Conflict("Order has an invoice and cannot be deleted")
)

// MinQuantity is the exclusive lower bound on an order quantity, in tonnes.
const MinQuantity = 0.1

type Order struct {
	ID              string     `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	OrderID         string     `gorm:"column:order_id;size:32;not null;uniqueIndex:ux_orders_order_id" json:"orderId"`
	ItemName        string     `gorm:"column:item_name;size:191;not null" json:"itemName"`
	Quantity        float64    `gorm:"column:quantity;type:decimal(18,3);not null" json:"quantity"`
	Price           float64    `gorm:"column:price;type:decimal(18,2);not null" json:"price"`
	TotalAmount     float64    `gorm:"column:total_amount;type:decimal(20,5);not null" json:"totalAmount"`
	Reason          string     `gorm:"column:reason;type:text;not null" json:"reason"`
	SupplierID      string     `gorm:"column:supplier_id;type:char(32);not null;index:idx_orders_supplier" json:"supplierId"`
	Supplier        *user.User `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	RequesterID     string     `gorm:"column:requester_id;type:char(32);not null;index:idx_orders_requester" json:"requesterId"`
	Requester       *user.User `gorm:"foreignKey:RequesterID;references:ID" json:"requester,omitempty"`
	FeedType        string     `gorm:"column:feed_type;size:128;not null" json:"feedType"`
	Status          Status     `gorm:"column:status;size:16;not null;default:'Pending';index:idx_orders_status" json:"status"`
	Priority        Priority   `gorm:"column:priority;size:8;not null;default:'Medium'" json:"priority"`
	Department      string     `gorm:"column:department;size:128" json:"department,omitempty"`
	ApprovedByID    *string    `gorm:"column:approved_by_id;type:char(32)" json:"approvedById,omitempty"`
	ApprovedBy      *user.User `gorm:"foreignKey:ApprovedByID;references:ID" json:"approvedBy,omitempty"`
	ApprovedDate    *time.Time `gorm:"column:approved_date" json:"approvedDate,omitempty"`
	DeliveryAddress string     `gorm:"column:delivery_address;type:text" json:"deliveryAddress,omitempty"`
	ContactPerson   string     `gorm:"column:contact_person;size:128" json:"contactPerson,omitempty"`
	Phone           string     `gorm:"column:phone;size:32" json:"phone,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

// Filter narrows list and stats queries; zero fields are ignored.
type Filter struct {
	RequesterID string
	SupplierID  string
	Status      Status
}

type StatusStat struct {
	Status      Status  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
