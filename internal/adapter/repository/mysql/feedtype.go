package mysql

import (
	"context"
	"strings"

	feedDomain "zoo-procure-hub/internal/domain/feedtype"

	"gorm.io/gorm"
)

type FeedTypeRepository struct{ db *gorm.DB }

func NewFeedTypeRepository(db *gorm.DB) *FeedTypeRepository { return &FeedTypeRepository{db: db} }

func (r *FeedTypeRepository) Create(ctx context.Context, f *feedDomain.FeedType) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeedTypeRepository) Save(ctx context.Context, f *feedDomain.FeedType) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FeedTypeRepository) GetByID(ctx context.Context, id string) (*feedDomain.FeedType, error) {
	var out feedDomain.FeedType
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *FeedTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&feedDomain.FeedType{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&n)
	return n > 0, res.Error
}

func (r *FeedTypeRepository) ListActive(ctx context.Context) ([]feedDomain.FeedType, error) {
	var out []feedDomain.FeedType
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&out)
	return out, res.Error
}

func (r *FeedTypeRepository) SearchByCategory(ctx context.Context, category string) ([]feedDomain.FeedType, error) {
	var out []feedDomain.FeedType
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(category) LIKE ? ESCAPE '!'", containsPattern(category)).
		Order("name").
		Find(&out)
	return out, res.Error
}

func (r *FeedTypeRepository) StatsByCategory(ctx context.Context) ([]feedDomain.CategoryStat, error) {
	var out []feedDomain.CategoryStat
	res := r.db.WithContext(ctx).
		Model(&feedDomain.FeedType{}).
		Where("is_active = ?", true).
		Select("category, COUNT(*) AS count, COALESCE(AVG(price_per_tonne), 0) AS average_price").
		Group("category").
		Order("category").
		Scan(&out)
	return out, res.Error
}
