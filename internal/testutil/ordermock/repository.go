package ordermock

import (
	"context"
	"errors"

	domain "zoo-procure-hub/internal/domain/order"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("ordermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters return errUnimplemented; unset writers are no-ops.
type Repo struct {
	CreateFn              func(ctx context.Context, o *domain.Order) error
	SaveFn                func(ctx context.Context, o *domain.Order) error
	GetByIDFn             func(ctx context.Context, id string) (*domain.Order, error)
	GetByIDForUpdateFn    func(ctx context.Context, id string) (*domain.Order, error)
	CompareAndSetStatusFn func(ctx context.Context, o *domain.Order, expected domain.Status) (bool, error)
	DeleteFn              func(ctx context.Context, id string) error
	ListFn                func(ctx context.Context, f domain.Filter) ([]domain.Order, error)
	StatsByStatusFn       func(ctx context.Context, f domain.Filter) ([]domain.StatusStat, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, o *domain.Order) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) CompareAndSetStatus(ctx context.Context, o *domain.Order, expected domain.Status) (bool, error) {
	if m.CompareAndSetStatusFn != nil {
		return m.CompareAndSetStatusFn(ctx, o, expected)
	}
	return true, nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Order, error) {
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
