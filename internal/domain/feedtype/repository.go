package feedtype

import "context"

type Repository interface {
	Create(ctx context.Context, f *FeedType) error
	Save(ctx context.Context, f *FeedType) error
	GetByID(ctx context.Context, id string) (*FeedType, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListActive(ctx context.Context) ([]FeedType, error)
	SearchByCategory(ctx context.Context, category string) ([]FeedType, error)
	StatsByCategory(ctx context.Context) ([]CategoryStat, error)
}
