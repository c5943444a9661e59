package notify

import (
	"context"
	"testing"

	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := NewLogNotifier(zap.New(core))
	ctx := context.Background()

	o := &order.Order{OrderID: "ORD-123456-ABC", SupplierID: "s1", TotalAmount: 200}
	n.OrderDelivered(ctx, o, nil)
	n.OrderDelivered(ctx, o, &invoice.Invoice{InvoiceID: "INV-1-AAAAA", InvoiceNumber: "INV-2026-10-0001"})

	verifier := "u1"
	n.InvoiceVerified(ctx, &invoice.Invoice{InvoiceID: "INV-1-AAAAA", VerifiedByID: &verifier})

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "order.delivered", entries[0].ContextMap()["event"])
	assert.NotContains(t, entries[0].ContextMap(), "invoice_id")
	assert.Equal(t, "INV-1-AAAAA", entries[1].ContextMap()["invoice_id"])
	assert.Equal(t, "u1", entries[2].ContextMap()["verified_by"])
}

func TestNewLogNotifier_NilLogger(t *testing.T) {
	n := NewLogNotifier(nil)
	n.InvoiceVerified(context.Background(), &invoice.Invoice{})
}
