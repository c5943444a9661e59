package mysql

import (
	"context"
	"strings"

	supplierDomain "zoo-procure-hub/internal/domain/supplier"

	"gorm.io/gorm"
)

type SupplierRepository struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) *SupplierRepository { return &SupplierRepository{db: db} }

func (r *SupplierRepository) Create(ctx context.Context, s *supplierDomain.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SupplierRepository) Save(ctx context.Context, s *supplierDomain.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*supplierDomain.Supplier, error) {
	var out supplierDomain.Supplier
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *SupplierRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&supplierDomain.Supplier{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&n)
	return n > 0, res.Error
}

func (r *SupplierRepository) ListActive(ctx context.Context) ([]supplierDomain.Supplier, error) {
	var out []supplierDomain.Supplier
	res := r.db.WithContext(ctx).
		Where("status = ?", supplierDomain.StatusActive).
		Order("name, id").
		Find(&out)
	return out, res.Error
}

func (r *SupplierRepository) SearchBySpeciality(ctx context.Context, speciality string) ([]supplierDomain.Supplier, error) {
	var out []supplierDomain.Supplier
	res := r.db.WithContext(ctx).
		Where("status = ?", supplierDomain.StatusActive).
		Where("LOWER(speciality) LIKE ? ESCAPE '!'", containsPattern(speciality)).
		Order("rating DESC, name").
		Find(&out)
	return out, res.Error
}

func (r *SupplierRepository) StatsByStatus(ctx context.Context) ([]supplierDomain.StatusStat, error) {
	var out []supplierDomain.StatusStat
	res := r.db.WithContext(ctx).
		Model(&supplierDomain.Supplier{}).
		Select("status, COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average_rating").
		Group("status").
		Order("status").
		Scan(&out)
	return out, res.Error
}
