package mysql

import (
	"context"

	orderDomain "zoo-procure-hub/internal/domain/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Requester").
		Preload("ApprovedBy")
}

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

func (r *OrderRepository) Save(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.withRelations(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *OrderRepository) CompareAndSetStatus(ctx context.Context, o *orderDomain.Order, expected orderDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&orderDomain.Order{}).
		Where("id = ? AND status = ?", o.ID, expected).
		Updates(map[string]any{
			"status":         o.Status,
			"approved_by_id": o.ApprovedByID,
			"approved_date":  o.ApprovedDate,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderDomain.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func applyOrderFilter(q *gorm.DB, f orderDomain.Filter) *gorm.DB {
	if f.RequesterID != "" {
		q = q.Where("requester_id = ?", f.RequesterID)
	}
	if f.SupplierID != "" {
		q = q.Where("supplier_id = ?", f.SupplierID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *OrderRepository) List(ctx context.Context, f orderDomain.Filter) ([]orderDomain.Order, error) {
	var out []orderDomain.Order
	res := applyOrderFilter(r.withRelations(ctx), f).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *OrderRepository) StatsByStatus(ctx context.Context, f orderDomain.Filter) ([]orderDomain.StatusStat, error) {
	var out []orderDomain.StatusStat
	q := r.db.WithContext(ctx).Model(&orderDomain.Order{})
	res := applyOrderFilter(q, f).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_amount").
		Group("status").
		Order("status").
		Scan(&out)
	return out, res.Error
}
