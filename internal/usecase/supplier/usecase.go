package supplier

import (
	"context"
	"errors"
	"strings"

	"zoo-procure-hub/internal/domain/apperr"
	"zoo-procure-hub/internal/domain/supplier"
	"zoo-procure-hub/pkg/id"

	"gorm.io/gorm"
)

var (
	errMissingFields = apperr.Validation("name, contact, email, phone and speciality are required")
	errInvalidStatus = apperr.Validation("Invalid supplier status")
)

type CreateInput struct {
	Name       string           `json:"name"`
	Contact    string           `json:"contact"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Speciality string           `json:"speciality"`
	Rating     float64          `json:"rating"`
	Address    supplier.Address `json:"address"`
	Website    string           `json:"website"`
	Notes      string           `json:"notes"`
}

type UpdateInput struct {
	Name       *string           `json:"name"`
	Contact    *string           `json:"contact"`
	Email      *string           `json:"email"`
	Phone      *string           `json:"phone"`
	Speciality *string           `json:"speciality"`
	Status     *supplier.Status  `json:"status"`
	Address    *supplier.Address `json:"address"`
	Website    *string           `json:"website"`
	Notes      *string           `json:"notes"`
}

type Usecase struct{ repo supplier.Repository }

func NewUsecase(r supplier.Repository) *Usecase { return &Usecase{repo: r} }

func validRating(r float64) bool { return r >= 0 && r <= 5 }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*supplier.Supplier, error) {
	s := &supplier.Supplier{
		ID:         id.NewID32(),
		Name:       strings.TrimSpace(in.Name),
		Contact:    strings.TrimSpace(in.Contact),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:      strings.TrimSpace(in.Phone),
		Speciality: strings.TrimSpace(in.Speciality),
		Rating:     in.Rating,
		Status:     supplier.StatusActive,
		Address:    in.Address,
		Website:    strings.TrimSpace(in.Website),
		Notes:      strings.TrimSpace(in.Notes),
	}
	if s.Name == "" || s.Contact == "" || s.Email == "" || s.Phone == "" || s.Speciality == "" {
		return nil, errMissingFields
	}
	if !validRating(s.Rating) {
		return nil, supplier.ErrInvalidRating
	}
	exists, err := u.repo.ExistsByEmail(ctx, s.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, supplier.ErrAlreadyExists
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, conflict(err)
	}
	return s, nil
}

func (u *Usecase) Get(ctx context.Context, supplierID string) (*supplier.Supplier, error) {
	s, err := u.repo.GetByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, supplier.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (u *Usecase) List(ctx context.Context) ([]supplier.Supplier, error) {
	return u.repo.ListActive(ctx)
}

func (u *Usecase) SearchBySpeciality(ctx context.Context, speciality string) ([]supplier.Supplier, error) {
	return u.repo.SearchBySpeciality(ctx, strings.TrimSpace(speciality))
}

func (u *Usecase) Stats(ctx context.Context) ([]supplier.StatusStat, error) {
	return u.repo.StatsByStatus(ctx)
}

func (u *Usecase) Update(ctx context.Context, supplierID string, in UpdateInput) (*supplier.Supplier, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, errInvalidStatus
	}
	s, err := u.Get(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&s.Name, in.Name)
	set(&s.Contact, in.Contact)
	set(&s.Phone, in.Phone)
	set(&s.Speciality, in.Speciality)
	set(&s.Website, in.Website)
	set(&s.Notes, in.Notes)
	if in.Email != nil {
		s.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if s.Name == "" || s.Contact == "" || s.Email == "" || s.Phone == "" || s.Speciality == "" {
		return nil, errMissingFields
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, conflict(err)
	}
	return s, nil
}

func (u *Usecase) UpdateRating(ctx context.Context, supplierID string, rating float64) (*supplier.Supplier, error) {
	if !validRating(rating) {
		return nil, supplier.ErrInvalidRating
	}
	s, err := u.Get(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	s.Rating = rating
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Deactivate is the soft delete: status becomes Inactive.
func (u *Usecase) Deactivate(ctx context.Context, supplierID string) error {
	s, err := u.Get(ctx, supplierID)
	if err != nil {
		return err
	}
	s.Status = supplier.StatusInactive
	return u.repo.Save(ctx, s)
}

func conflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return supplier.ErrAlreadyExists
	}
	return err
}
