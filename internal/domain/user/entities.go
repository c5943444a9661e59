package user

import (
	"time"

	"zoo-procure-hub/internal/domain/apperr"
)

type Role string

const (
	RoleStaff    Role = "staff"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
	RoleInvoice  Role = "invoice"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleSupplier, RoleAdmin, RoleInvoice:
		return true
	}
	return false
}

var (
	ErrNotFound           = apperr.NotFound("User not found")
	ErrAlreadyExists      = apperr.Conflict("User already exists with this email")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
	ErrDeactivated        = apperr.Unauthorized("Account is deactivated")
	ErrInvalidRole        = apperr.Validation("Invalid role")
	ErrAdminSignup        = apperr.Forbidden("Administrator accounts cannot be self-registered")
	ErrWeakPassword       = apperr.Validation("Password must be at least 6 characters")
)

// User is an account: staff, suppliers, admins and invoice clerks share the table.
type User struct {
	ID         string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Username   string    `gorm:"column:username;size:64;not null;uniqueIndex:ux_users_username" json:"username"`
	Email      string    `gorm:"column:email;size:191;not null;uniqueIndex:ux_users_email" json:"email"`
	Password   string    `gorm:"column:password;size:255;not null" json:"-"`
	Name       string    `gorm:"column:name;size:128;not null" json:"name"`
	Role       Role      `gorm:"column:role;size:16;not null;default:'staff';index:idx_users_role" json:"role"`
	Zoo        string    `gorm:"column:zoo;size:128" json:"zoo,omitempty"`
	Company    string    `gorm:"column:company;size:128" json:"company,omitempty"`
	Speciality string    `gorm:"column:speciality;size:128" json:"speciality,omitempty"`
	Contact    string    `gorm:"column:contact;size:64" json:"contact,omitempty"`
	Address    string    `gorm:"column:address;type:text" json:"address,omitempty"`
	Rating     float64   `gorm:"column:rating;type:decimal(3,2);default:0" json:"rating"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// DisplayName falls back to the username when no name was recorded.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
