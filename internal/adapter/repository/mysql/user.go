package mysql

import (
	"context"
	"strings"

	userDomain "zoo-procure-hub/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*userDomain.User, error) {
	var out userDomain.User
	login = strings.TrimSpace(login)
	res := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", strings.ToLower(login), login).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("email = ? OR username = ?", strings.ToLower(email), username).
		Count(&n)
	return n > 0, res.Error
}

func (r *UserRepository) ListActive(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListActiveByRole(ctx context.Context, role userDomain.Role) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("name, id").
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) SearchSuppliersBySpeciality(ctx context.Context, speciality string) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", userDomain.RoleSupplier, true).
		Where("LOWER(speciality) LIKE ? ESCAPE '!'", containsPattern(speciality)).
		Order("name, id").
		Find(&out)
	return out, res.Error
}
