package supplier

import "context"

type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	Save(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, id string) (*Supplier, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]Supplier, error)
	SearchBySpeciality(ctx context.Context, speciality string) ([]Supplier, error)
	StatsByStatus(ctx context.Context) ([]StatusStat, error)
}
