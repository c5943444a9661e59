package supplier

import (
	"context"
	"testing"

	"zoo-procure-hub/internal/domain/supplier"
	"zoo-procure-hub/internal/testutil/suppliermock"

	"gorm.io/gorm"
)

func newRepo(stored *supplier.Supplier) *suppliermock.Repo {
	return &suppliermock.Repo{
		ExistsByEmailFn: func(_ context.Context, email string) (bool, error) {
			return stored != nil && stored.Email == email, nil
		},
		GetByIDFn: func(_ context.Context, id string) (*supplier.Supplier, error) {
			if stored == nil || stored.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			cp := *stored
			return &cp, nil
		},
		SaveFn: func(_ context.Context, s *supplier.Supplier) error {
			*stored = *s
			return nil
		},
	}
}

func TestCreate(t *testing.T) {
	existing := &supplier.Supplier{ID: "s1", Email: "acme@x.test"}
	uc := NewUsecase(newRepo(existing))
	ctx := context.Background()

	in := CreateInput{Name: "Hayco", Contact: "Pat", Email: " HAY@x.test ", Phone: "555", Speciality: "Hay"}
	s, err := uc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Email != "hay@x.test" || s.Status != supplier.StatusActive {
		t.Fatalf("unexpected supplier: %+v", s)
	}

	in.Email = "acme@x.test"
	if _, err := uc.Create(ctx, in); err != supplier.ErrAlreadyExists {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
	in.Email, in.Rating = "new@x.test", 5.5
	if _, err := uc.Create(ctx, in); err != supplier.ErrInvalidRating {
		t.Fatalf("want ErrInvalidRating, got %v", err)
	}
	if _, err := uc.Create(ctx, CreateInput{Name: "x"}); err != errMissingFields {
		t.Fatalf("want errMissingFields, got %v", err)
	}
}

func TestRatingUpdateDeactivate(t *testing.T) {
	stored := &supplier.Supplier{
		ID: "s1", Name: "Acme", Contact: "Pat", Email: "acme@x.test", Phone: "1",
		Speciality: "Fish", Status: supplier.StatusActive,
	}
	uc := NewUsecase(newRepo(stored))
	ctx := context.Background()

	if _, err := uc.UpdateRating(ctx, "s1", -0.5); err != supplier.ErrInvalidRating {
		t.Fatalf("want ErrInvalidRating, got %v", err)
	}
	s, err := uc.UpdateRating(ctx, "s1", 4.5)
	if err != nil || s.Rating != 4.5 || stored.Rating != 4.5 {
		t.Fatalf("UpdateRating: %+v err=%v", s, err)
	}
	if _, err := uc.UpdateRating(ctx, "nope", 3); err != supplier.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	bogus := supplier.Status("Archived")
	if _, err := uc.Update(ctx, "s1", UpdateInput{Status: &bogus}); err != errInvalidStatus {
		t.Fatalf("want errInvalidStatus, got %v", err)
	}
	city := supplier.Address{City: "Perth"}
	s, err = uc.Update(ctx, "s1", UpdateInput{Address: &city})
	if err != nil || s.Address.City != "Perth" {
		t.Fatalf("Update: %+v err=%v", s, err)
	}

	if err := uc.Deactivate(ctx, "s1"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if stored.Status != supplier.StatusInactive {
		t.Fatalf("status = %s", stored.Status)
	}
}
