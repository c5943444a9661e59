package mysql

import (
	"context"

	invoiceDomain "zoo-procure-hub/internal/domain/invoice"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository { return &InvoiceRepository{db: db} }

func (r *InvoiceRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Order").
		Preload("Supplier").
		Preload("VerifiedBy")
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoiceDomain.Invoice) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *invoiceDomain.Invoice) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(inv).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.withRelations(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, id string) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *InvoiceRepository) GetByOrderRef(ctx context.Context, orderRef string) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.db.WithContext(ctx).Where("order_id = ?", orderRef).First(&out)
	return &out, res.Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&invoiceDomain.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func applyInvoiceFilter(q *gorm.DB, f invoiceDomain.Filter) *gorm.DB {
	if f.SupplierID != "" {
		q = q.Where("supplier_id = ?", f.SupplierID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *InvoiceRepository) List(ctx context.Context, f invoiceDomain.Filter) ([]invoiceDomain.Invoice, error) {
	var out []invoiceDomain.Invoice
	res := applyInvoiceFilter(r.withRelations(ctx), f).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvoiceRepository) StatsByStatus(ctx context.Context, f invoiceDomain.Filter) ([]invoiceDomain.StatusStat, error) {
	var out []invoiceDomain.StatusStat
	q := r.db.WithContext(ctx).Model(&invoiceDomain.Invoice{})
	res := applyInvoiceFilter(q, f).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("status").
		Order("status").
		Scan(&out)
	return out, res.Error
}
