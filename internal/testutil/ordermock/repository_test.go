package ordermock

import (
	"context"
	"errors"
	"testing"

	domain "zoo-procure-hub/internal/domain/order"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	o := &domain.Order{ID: "o1"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Order) error {
			called = true
			if gotCtx != ctx || got != o {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, o); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	if err := (&Repo{}).Create(ctx, o); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if _, err := m.GetByID(ctx, "x"); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByID default: %v", err)
	}
	if _, err := m.GetByIDForUpdate(ctx, "x"); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByIDForUpdate default: %v", err)
	}
	if ok, err := m.CompareAndSetStatus(ctx, &domain.Order{}, domain.StatusPending); !ok || err != nil {
		t.Fatalf("CAS default: ok=%v err=%v", ok, err)
	}
	if list, err := m.List(ctx, domain.Filter{}); list != nil || err != nil {
		t.Fatalf("List default: %v %v", list, err)
	}
}

func TestRepo_CompareAndSetStatusForwards(t *testing.T) {
	m := &Repo{
		CompareAndSetStatusFn: func(_ context.Context, o *domain.Order, expected domain.Status) (bool, error) {
			return o.Status == domain.StatusApproved && expected == domain.StatusPending, nil
		},
	}
	ok, err := m.CompareAndSetStatus(context.Background(), &domain.Order{Status: domain.StatusApproved}, domain.StatusPending)
	if err != nil || !ok {
		t.Fatalf("CAS forward: ok=%v err=%v", ok, err)
	}
}
