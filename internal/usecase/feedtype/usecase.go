package feedtype

import (
	"context"
	"errors"
	"strings"

	"zoo-procure-hub/internal/domain/apperr"
	"zoo-procure-hub/internal/domain/feedtype"
	"zoo-procure-hub/pkg/id"

	"gorm.io/gorm"
)

var (
	errMissingFields = apperr.Validation("name and category are required")
	errInvalidPrice  = apperr.Validation("Price per tonne must be greater than or equal to 0")
)

type CreateInput struct {
	Name          string  `json:"name"`
	PricePerTonne float64 `json:"pricePerTonne"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
}

type UpdateInput struct {
	Name          *string  `json:"name"`
	PricePerTonne *float64 `json:"pricePerTonne"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	IsActive      *bool    `json:"isActive"`
}

type Usecase struct{ repo feedtype.Repository }

func NewUsecase(r feedtype.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*feedtype.FeedType, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" {
		return nil, errMissingFields
	}
	if in.PricePerTonne < 0 {
		return nil, errInvalidPrice
	}
	exists, err := u.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, feedtype.ErrAlreadyExists
	}

	f := &feedtype.FeedType{
		ID:            id.NewID32(),
		Name:          in.Name,
		PricePerTonne: in.PricePerTonne,
		Description:   strings.TrimSpace(in.Description),
		Category:      in.Category,
		IsActive:      true,
	}
	if err := u.repo.Create(ctx, f); err != nil {
		return nil, conflict(err)
	}
	return f, nil
}

func (u *Usecase) Get(ctx context.Context, feedTypeID string) (*feedtype.FeedType, error) {
	f, err := u.repo.GetByID(ctx, feedTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feedtype.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (u *Usecase) List(ctx context.Context) ([]feedtype.FeedType, error) {
	return u.repo.ListActive(ctx)
}

func (u *Usecase) SearchByCategory(ctx context.Context, category string) ([]feedtype.FeedType, error) {
	return u.repo.SearchByCategory(ctx, strings.TrimSpace(category))
}

func (u *Usecase) Stats(ctx context.Context) ([]feedtype.CategoryStat, error) {
	return u.repo.StatsByCategory(ctx)
}

func (u *Usecase) Update(ctx context.Context, feedTypeID string, in UpdateInput) (*feedtype.FeedType, error) {
	if in.PricePerTonne != nil && *in.PricePerTonne < 0 {
		return nil, errInvalidPrice
	}
	f, err := u.Get(ctx, feedTypeID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		f.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		f.Category = strings.TrimSpace(*in.Category)
	}
	if f.Name == "" || f.Category == "" {
		return nil, errMissingFields
	}
	if in.PricePerTonne != nil {
		f.PricePerTonne = *in.PricePerTonne
	}
	if in.Description != nil {
		f.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}
	if err := u.repo.Save(ctx, f); err != nil {
		return nil, conflict(err)
	}
	return f, nil
}

// Deactivate hides the feed type from lists; it stays readable by id.
func (u *Usecase) Deactivate(ctx context.Context, feedTypeID string) error {
	f, err := u.Get(ctx, feedTypeID)
	if err != nil {
		return err
	}
	f.IsActive = false
	return u.repo.Save(ctx, f)
}

func conflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return feedtype.ErrAlreadyExists
	}
	return err
}
