package usermock

import (
	"context"
	"errors"

	domain "zoo-procure-hub/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, u *domain.User) error
	SaveFn                        func(ctx context.Context, u *domain.User) error
	GetByIDFn                     func(ctx context.Context, id string) (*domain.User, error)
	GetByLoginFn                  func(ctx context.Context, login string) (*domain.User, error)
	ExistsByEmailOrUsernameFn     func(ctx context.Context, email, username string) (bool, error)
	ListActiveFn                  func(ctx context.Context) ([]domain.User, error)
	ListActiveByRoleFn            func(ctx context.Context, role domain.Role) ([]domain.User, error)
	SearchSuppliersBySpecialityFn func(ctx context.Context, speciality string) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if m.GetByLoginFn != nil {
		return m.GetByLoginFn(ctx, login)
	}
	return nil, errUnimplemented
}

func (m *Repo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	if m.ExistsByEmailOrUsernameFn != nil {
		return m.ExistsByEmailOrUsernameFn(ctx, email, username)
	}
	return false, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.User, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListActiveByRoleFn != nil {
		return m.ListActiveByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) SearchSuppliersBySpeciality(ctx context.Context, speciality string) ([]domain.User, error) {
	if m.SearchSuppliersBySpecialityFn != nil {
		return m.SearchSuppliersBySpecialityFn(ctx, speciality)
	}
	return nil, nil
}
