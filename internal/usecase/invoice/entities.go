package invoice

import (
	"time"

	"zoo-procure-hub/internal/domain/invoice"
)

type CreateInput struct {
	OrderRef      string     `json:"orderId"`
	Customer      string     `json:"customer"`
	Amount        *float64   `json:"amount"`
	Items         string     `json:"items"`
	InvoiceNumber string     `json:"invoiceNumber"`
	DueDate       *time.Time `json:"dueDate"`
	Notes         string     `json:"notes"`
}

// UpdateInput carries a partial edit; nil fields are left untouched.
// Status is changed through the dedicated status operations only.
type UpdateInput struct {
	Customer          *string    `json:"customer"`
	Amount            *float64   `json:"amount"`
	Items             *string    `json:"items"`
	InvoiceNumber     *string    `json:"invoiceNumber"`
	DueDate           *time.Time `json:"dueDate"`
	VerificationNotes *string    `json:"verificationNotes"`
}

type StatusInput struct {
	Status invoice.Status
	// VerifiedBy defaults to the acting user when the target is Verified.
	VerifiedBy string
	Notes      string
}
