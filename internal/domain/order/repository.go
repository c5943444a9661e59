package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	// Save persists scalar fields only; relations are never upserted.
	Save(ctx context.Context, o *Order) error
	// GetByID loads the order with supplier, requester and approver.
	GetByID(ctx context.Context, id string) (*Order, error)
	// GetByIDForUpdate row-locks the order inside the current tx.
	GetByIDForUpdate(ctx context.Context, id string) (*Order, error)
	// CompareAndSetStatus writes status and approval stamps only when the
	// stored status still equals expected. It reports whether a row changed.
	CompareAndSetStatus(ctx context.Context, o *Order, expected Status) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filter) ([]Order, error)
	StatsByStatus(ctx context.Context, f Filter) ([]StatusStat, error)
}
