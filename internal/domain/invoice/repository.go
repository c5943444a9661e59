package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Save(ctx context.Context, inv *Invoice) error
	// GetByID loads the invoice with order, supplier and verifier.
	GetByID(ctx context.Context, id string) (*Invoice, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Invoice, error)
	// GetByOrderRef returns the invoice generated for an order (storage id).
	GetByOrderRef(ctx context.Context, orderRef string) (*Invoice, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filter) ([]Invoice, error)
	StatsByStatus(ctx context.Context, f Filter) ([]StatusStat, error)
}
