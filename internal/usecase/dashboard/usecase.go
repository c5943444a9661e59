package dashboard

import (
	"context"

	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/user"

	"golang.org/x/sync/errgroup"
)

type OrderStats interface {
	StatsByStatus(ctx context.Context, f order.Filter) ([]order.StatusStat, error)
}

type InvoiceStats interface {
	StatsByStatus(ctx context.Context, f invoice.Filter) ([]invoice.StatusStat, error)
}

type Summary struct {
	Orders   []order.StatusStat   `json:"orders"`
	Invoices []invoice.StatusStat `json:"invoices"`
}

type Usecase struct {
	orders   OrderStats
	invoices InvoiceStats
}

func NewUsecase(orders OrderStats, invoices InvoiceStats) *Usecase {
	return &Usecase{orders: orders, invoices: invoices}
}

// Summary aggregates orders and invoices by status, narrowed to what the actor may see.
func (u *Usecase) Summary(ctx context.Context, actor order.Actor) (*Summary, error) {
	of, inf := scope(actor)

	var s Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := u.orders.StatsByStatus(gctx, of)
		s.Orders = stats
		return err
	})
	g.Go(func() error {
		stats, err := u.invoices.StatsByStatus(gctx, inf)
		s.Invoices = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if s.Orders == nil {
		s.Orders = []order.StatusStat{}
	}
	if s.Invoices == nil {
		s.Invoices = []invoice.StatusStat{}
	}
	return &s, nil
}

func scope(actor order.Actor) (order.Filter, invoice.Filter) {
	switch actor.Role {
	case user.RoleSupplier:
		return order.Filter{SupplierID: actor.UserID}, invoice.Filter{SupplierID: actor.UserID}
	case user.RoleStaff:
		return order.Filter{RequesterID: actor.UserID}, invoice.Filter{}
	default:
		return order.Filter{}, invoice.Filter{}
	}
}
