package notify

import (
	"context"

	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"

	"go.uber.org/zap"
)

// LogNotifier records workflow events as structured log lines. It stands in
// for e-mail and PDF delivery and never reports failure to the caller.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log.Named("notify")}
}

func (n *LogNotifier) OrderDelivered(_ context.Context, o *order.Order, inv *invoice.Invoice) {
	fields := []zap.Field{
		zap.String("event", "order.delivered"),
		zap.String("order_id", o.OrderID),
		zap.String("supplier_id", o.SupplierID),
		zap.Float64("total_amount", o.TotalAmount),
	}
	if inv != nil {
		fields = append(fields,
			zap.String("invoice_id", inv.InvoiceID),
			zap.String("invoice_number", inv.InvoiceNumber),
		)
	}
	n.log.Info("order delivered", fields...)
}

func (n *LogNotifier) InvoiceVerified(_ context.Context, inv *invoice.Invoice) {
	verifier := ""
	if inv.VerifiedByID != nil {
		verifier = *inv.VerifiedByID
	}
	n.log.Info("invoice verified",
		zap.String("event", "invoice.verified"),
		zap.String("invoice_id", inv.InvoiceID),
		zap.String("supplier_id", inv.SupplierID),
		zap.String("verified_by", verifier),
		zap.Float64("amount", inv.Amount),
	)
}
