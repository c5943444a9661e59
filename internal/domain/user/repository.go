package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// login accepts either email or username
	GetByLogin(ctx context.Context, login string) (*User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	ListActive(ctx context.Context) ([]User, error)
	ListActiveByRole(ctx context.Context, role Role) ([]User, error)
	SearchSuppliersBySpeciality(ctx context.Context, speciality string) ([]User, error)
}
