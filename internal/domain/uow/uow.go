package uow

import (
	"context"

	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/user"
)

// Repos are bound to the running transaction.
type Repos struct {
	Orders   order.Repository
	Invoices invoice.Repository
	Users    user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the order row first, then pass it in
	WithinOrderTx(ctx context.Context, orderID string, fn func(r Repos, o *order.Order) error) error
	// lock the invoice row first, then pass it in
	WithinInvoiceTx(ctx context.Context, invoiceID string, fn func(r Repos, inv *invoice.Invoice) error) error
}
