package feedtype

import (
	"context"
	"testing"

	"zoo-procure-hub/internal/domain/feedtype"
	"zoo-procure-hub/internal/testutil/feedtypemock"

	"gorm.io/gorm"
)

func TestCreate(t *testing.T) {
	var saved *feedtype.FeedType
	repo := &feedtypemock.Repo{
		ExistsByNameFn: func(_ context.Context, name string) (bool, error) { return name == "Alfalfa", nil },
		CreateFn: func(_ context.Context, f *feedtype.FeedType) error {
			saved = f
			return nil
		},
	}
	uc := NewUsecase(repo)
	ctx := context.Background()

	f, err := uc.Create(ctx, CreateInput{Name: " Timothy Hay ", Category: "Forage", PricePerTonne: 300})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved == nil || f.Name != "Timothy Hay" || !f.IsActive || len(f.ID) != 32 {
		t.Fatalf("unexpected feed type: %+v", f)
	}

	if _, err := uc.Create(ctx, CreateInput{Name: "Alfalfa", Category: "Forage"}); err != feedtype.ErrAlreadyExists {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
	if _, err := uc.Create(ctx, CreateInput{Name: "Pellets"}); err != errMissingFields {
		t.Fatalf("want errMissingFields, got %v", err)
	}
	if _, err := uc.Create(ctx, CreateInput{Name: "Pellets", Category: "Mix", PricePerTonne: -1}); err != errInvalidPrice {
		t.Fatalf("want errInvalidPrice, got %v", err)
	}
}

func TestCreate_DuplicateKeyRace(t *testing.T) {
	repo := &feedtypemock.Repo{
		ExistsByNameFn: func(context.Context, string) (bool, error) { return false, nil },
		CreateFn:       func(context.Context, *feedtype.FeedType) error { return gorm.ErrDuplicatedKey },
	}
	if _, err := NewUsecase(repo).Create(context.Background(), CreateInput{Name: "Hay", Category: "Forage"}); err != feedtype.ErrAlreadyExists {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateAndDeactivate(t *testing.T) {
	stored := &feedtype.FeedType{ID: "f1", Name: "Hay", Category: "Forage", PricePerTonne: 100, IsActive: true}
	var saves int
	repo := &feedtypemock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*feedtype.FeedType, error) {
			if id != "f1" {
				return nil, gorm.ErrRecordNotFound
			}
			cp := *stored
			return &cp, nil
		},
		SaveFn: func(_ context.Context, f *feedtype.FeedType) error {
			saves++
			*stored = *f
			return nil
		},
	}
	uc := NewUsecase(repo)
	ctx := context.Background()

	price := 120.0
	f, err := uc.Update(ctx, "f1", UpdateInput{PricePerTonne: &price})
	if err != nil || f.PricePerTonne != 120 {
		t.Fatalf("Update: %+v err=%v", f, err)
	}

	empty := " "
	if _, err := uc.Update(ctx, "f1", UpdateInput{Name: &empty}); err != errMissingFields {
		t.Fatalf("want errMissingFields, got %v", err)
	}
	if _, err := uc.Update(ctx, "nope", UpdateInput{}); err != feedtype.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	if err := uc.Deactivate(ctx, "f1"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if stored.IsActive {
		t.Fatal("feed type should be inactive")
	}
	if saves != 2 {
		t.Fatalf("saves = %d", saves)
	}
	if err := uc.Deactivate(ctx, "nope"); err != feedtype.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
