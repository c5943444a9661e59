package feedtypemock

import (
	"context"
	"errors"

	domain "zoo-procure-hub/internal/domain/feedtype"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("feedtypemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, f *domain.FeedType) error
	SaveFn             func(ctx context.Context, f *domain.FeedType) error
	GetByIDFn          func(ctx context.Context, id string) (*domain.FeedType, error)
	ExistsByNameFn     func(ctx context.Context, name string) (bool, error)
	ListActiveFn       func(ctx context.Context) ([]domain.FeedType, error)
	SearchByCategoryFn func(ctx context.Context, category string) ([]domain.FeedType, error)
	StatsByCategoryFn  func(ctx context.Context) ([]domain.CategoryStat, error)
}

func (m *Repo) Create(ctx context.Context, f *domain.FeedType) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, f *domain.FeedType) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.FeedType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}
	return false, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.FeedType, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SearchByCategory(ctx context.Context, category string) ([]domain.FeedType, error) {
	if m.SearchByCategoryFn != nil {
		return m.SearchByCategoryFn(ctx, category)
	}
	return nil, nil
}

func (m *Repo) StatsByCategory(ctx context.Context) ([]domain.CategoryStat, error) {
	if m.StatsByCategoryFn != nil {
		return m.StatsByCategoryFn(ctx)
	}
	return nil, nil
}
