package invoicemock

import (
	"context"
	"errors"

	domain "zoo-procure-hub/internal/domain/invoice"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("invoicemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, inv *domain.Invoice) error
	SaveFn             func(ctx context.Context, inv *domain.Invoice) error
	GetByIDFn          func(ctx context.Context, id string) (*domain.Invoice, error)
	GetByIDForUpdateFn func(ctx context.Context, id string) (*domain.Invoice, error)
	GetByOrderRefFn    func(ctx context.Context, orderRef string) (*domain.Invoice, error)
	DeleteFn           func(ctx context.Context, id string) error
	ListFn             func(ctx context.Context, f domain.Filter) ([]domain.Invoice, error)
	StatsByStatusFn    func(ctx context.Context, f domain.Filter) ([]domain.StatusStat, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Invoice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, inv *domain.Invoice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Invoice, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByOrderRef(ctx context.Context, orderRef string) (*domain.Invoice, error) {
	if m.GetByOrderRefFn != nil {
		return m.GetByOrderRefFn(ctx, orderRef)
	}
	return nil, errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Invoice, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) StatsByStatus(ctx context.Context, f domain.Filter) ([]domain.StatusStat, error) {
	if m.StatsByStatusFn != nil {
		return m.StatsByStatusFn(ctx, f)
	}
	return nil, nil
}
