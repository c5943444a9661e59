package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zoo-procure-hub/internal/domain/supplier"
	"zoo-procure-hub/internal/domain/user"
	"zoo-procure-hub/pkg/id"

	"gorm.io/gorm"
)

const minPasswordLen = 6

type TokenIssuer interface {
	Issue(userID string, role user.Role) (string, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) bool
}

type Usecase struct {
	users  user.Repository
	tokens TokenIssuer
	hasher PasswordHasher
}

func NewUsecase(users user.Repository, tokens TokenIssuer, hasher PasswordHasher) *Usecase {
	return &Usecase{users: users, tokens: tokens, hasher: hasher}
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if in.Role == "" {
		in.Role = user.RoleStaff
	}
	if !in.Role.Valid() {
		return nil, user.ErrInvalidRole
	}
	if in.Role == user.RoleAdmin {
		return nil, user.ErrAdminSignup
	}
	if len(in.Password) < minPasswordLen {
		return nil, user.ErrWeakPassword
	}

	exists, err := u.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrAlreadyExists
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	nu := &user.User{
		ID:       id.NewID32(),
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		Name:     strings.TrimSpace(in.Name),
		Role:     in.Role,
		Zoo:      strings.TrimSpace(in.Zoo),
		Company:  strings.TrimSpace(in.Company),
		IsActive: true,
	}
	if in.Role == user.RoleSupplier {
		nu.Speciality = strings.TrimSpace(in.Speciality)
		nu.Contact = strings.TrimSpace(in.Contact)
		nu.Address = strings.TrimSpace(in.Address)
	}
	if err := u.users.Create(ctx, nu); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrAlreadyExists
		}
		return nil, err
	}
	return u.session(nu)
}

// Login accepts an email or a username. Unknown users and wrong passwords
// share one error, deactivated accounts included.
func (u *Usecase) Login(ctx context.Context, login, password string) (*Session, error) {
	found, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.hasher.Compare(found.Password, password) {
		return nil, user.ErrInvalidCredentials
	}
	// only the account holder learns it was deactivated
	if !found.IsActive {
		return nil, user.ErrDeactivated
	}
	return u.session(found)
}

func (u *Usecase) session(usr *user.User) (*Session, error) {
	tok, err := u.tokens.Issue(usr.ID, usr.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{User: usr, Token: tok}, nil
}

func (u *Usecase) Profile(ctx context.Context, userID string) (*user.User, error) {
	found, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return found, nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*user.User, error) {
	found, err := u.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		found.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		found.Email = normalizeEmail(*in.Email)
	}
	if in.Zoo != nil {
		found.Zoo = strings.TrimSpace(*in.Zoo)
	}
	if in.Company != nil {
		found.Company = strings.TrimSpace(*in.Company)
	}
	if err := u.save(ctx, found); err != nil {
		return nil, err
	}
	return found, nil
}

func (u *Usecase) ListUsers(ctx context.Context) ([]user.User, error) {
	return u.users.ListActive(ctx)
}

func (u *Usecase) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	if !role.Valid() {
		return nil, user.ErrInvalidRole
	}
	return u.users.ListActiveByRole(ctx, role)
}

func (u *Usecase) UpdateUser(ctx context.Context, userID string, in UserUpdateInput) (*user.User, error) {
	found, err := u.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, user.ErrInvalidRole
		}
		found.Role = *in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, user.ErrWeakPassword
		}
		hash, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		found.Password = hash
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, supplier.ErrInvalidRating
		}
		found.Rating = *in.Rating
	}
	if in.Username != nil {
		found.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		found.Email = normalizeEmail(*in.Email)
	}
	if in.Name != nil {
		found.Name = strings.TrimSpace(*in.Name)
	}
	if in.Speciality != nil {
		found.Speciality = strings.TrimSpace(*in.Speciality)
	}
	if in.IsActive != nil {
		found.IsActive = *in.IsActive
	}
	if err := u.save(ctx, found); err != nil {
		return nil, err
	}
	return found, nil
}

// DeactivateUser is the soft delete: the account stays readable by id.
func (u *Usecase) DeactivateUser(ctx context.Context, userID string) error {
	found, err := u.Profile(ctx, userID)
	if err != nil {
		return err
	}
	found.IsActive = false
	return u.save(ctx, found)
}

func (u *Usecase) ListSupplierUsers(ctx context.Context) ([]user.User, error) {
	return u.users.ListActiveByRole(ctx, user.RoleSupplier)
}

func (u *Usecase) SearchSupplierUsers(ctx context.Context, speciality string) ([]user.User, error) {
	return u.users.SearchSuppliersBySpeciality(ctx, speciality)
}

// EnsureAdmin creates the first administrator when no account uses email.
// It reports whether a user was created.
func (u *Usecase) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	exists, err := u.users.ExistsByEmailOrUsername(ctx, email, "admin")
	if err != nil || exists {
		return false, err
	}
	if len(password) < minPasswordLen {
		return false, user.ErrWeakPassword
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := &user.User{
		ID:       id.NewID32(),
		Username: "admin",
		Email:    email,
		Password: hash,
		Name:     "Administrator",
		Role:     user.RoleAdmin,
		IsActive: true,
	}
	if err := u.users.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

func (u *Usecase) save(ctx context.Context, usr *user.User) error {
	if err := u.users.Save(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.ErrNotFound
	}
	return err
}
