package invoice

import (
	"strconv"
	"time"

	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/pkg/id"
)

// ItemsLine renders the free-text items column for an order.
func ItemsLine(itemName string, quantity float64) string {
	return itemName + " - " + strconv.FormatFloat(quantity, 'f', -1, 64) + " tonnes"
}

// CustomerName is the requester's display name or DefaultCustomer.
func CustomerName(o *order.Order) string {
	if o.Requester != nil {
		if n := o.Requester.DisplayName(); n != "" {
			return n
		}
	}
	return DefaultCustomer
}

// NewForDelivery builds, without persisting, the invoice for a delivered order.
func NewForDelivery(o *order.Order, now time.Time) *Invoice {
	now = now.UTC()
	return &Invoice{
		ID:            id.NewID32(),
		InvoiceID:     id.InvoiceID(now),
		OrderRef:      o.ID,
		SupplierID:    o.SupplierID,
		Customer:      CustomerName(o),
		Amount:        o.TotalAmount,
		Items:         ItemsLine(o.ItemName, o.Quantity),
		Status:        StatusPendingVerification,
		InvoiceNumber: id.InvoiceNumber(now),
		ReceivedDate:  now,
		DueDate:       now.Add(PaymentTerm),
		Discrepancies: []string{},
	}
}
