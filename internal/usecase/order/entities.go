package order

import (
	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
)

type CreateInput struct {
	ItemName        string         `json:"itemName"`
	Quantity        float64        `json:"quantity"`
	Price           float64        `json:"price"`
	Reason          string         `json:"reason"`
	Supplier        string         `json:"supplier"`
	FeedType        string         `json:"feedType"`
	Priority        order.Priority `json:"priority"`
	Department      string         `json:"department"`
	DeliveryAddress string         `json:"deliveryAddress"`
	ContactPerson   string         `json:"contactPerson"`
	Phone           string         `json:"phone"`
}

// UpdateInput is a partial edit; nil fields keep their stored value.
type UpdateInput struct {
	ItemName        *string         `json:"itemName"`
	Quantity        *float64        `json:"quantity"`
	Price           *float64        `json:"price"`
	Reason          *string         `json:"reason"`
	Supplier        *string         `json:"supplier"`
	FeedType        *string         `json:"feedType"`
	Priority        *order.Priority `json:"priority"`
	Department      *string         `json:"department"`
	DeliveryAddress *string         `json:"deliveryAddress"`
	ContactPerson   *string         `json:"contactPerson"`
	Phone           *string         `json:"phone"`
}

// StatusResult reports a status change together with the outcome of the
// invoice step when the order was delivered.
type StatusResult struct {
	Order          *order.Order
	Invoice        *invoice.Invoice
	InvoiceCreated bool
	Message        string
	Warning        string
}

const (
	MsgStatusUpdated    = "Order status updated successfully"
	MsgDeliveredInvoice = "Order status updated to Delivered and invoice created automatically with Pending Verification status"
	MsgDeliveredExists  = "Order is delivered; its invoice already exists"
	MsgInvoiceFailed    = "Order status updated successfully, but invoice creation failed"
	WarnInvoiceFailed   = "Invoice creation failed. Please create invoice manually."
)
