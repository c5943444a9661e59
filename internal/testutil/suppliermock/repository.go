package suppliermock

import (
	"context"
	"errors"

	domain "zoo-procure-hub/internal/domain/supplier"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("suppliermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, s *domain.Supplier) error
	SaveFn               func(ctx context.Context, s *domain.Supplier) error
	GetByIDFn            func(ctx context.Context, id string) (*domain.Supplier, error)
	ExistsByEmailFn      func(ctx context.Context, email string) (bool, error)
	ListActiveFn         func(ctx context.Context) ([]domain.Supplier, error)
	SearchBySpecialityFn func(ctx context.Context, speciality string) ([]domain.Supplier, error)
	StatsByStatusFn      func(ctx context.Context) ([]domain.StatusStat, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Supplier) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Supplier) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Supplier, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SearchBySpeciality(ctx context.Context, speciality string) ([]domain.Supplier, error) {
	if m.SearchBySpecialityFn != nil {
		return m.SearchBySpecialityFn(ctx, speciality)
	}
	return nil, nil
}

func (m *Repo) StatsByStatus(ctx context.Context) ([]domain.StatusStat, error) {
	if m.StatsByStatusFn != nil {
		return m.StatsByStatusFn(ctx)
	}
	return nil, nil
}
