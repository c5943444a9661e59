package supplier

import (
	"time"

	"zoo-procure-hub/internal/domain/apperr"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusInactive  Status = "Inactive"
	StatusSuspended Status = "Suspended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

var (
	ErrNotFound      = apperr.NotFound("Supplier not found")
	ErrAlreadyExists = apperr.Conflict("Supplier already exists with this email")
	ErrInvalidRating = apperr.Validation("Rating must be between 0 and 5")
)

type Address struct {
	Street  string `gorm:"column:street;size:191" json:"street,omitempty"`
	City    string `gorm:"column:city;size:96" json:"city,omitempty"`
	State   string `gorm:"column:state;size:96" json:"state,omitempty"`
	ZipCode string `gorm:"column:zip_code;size:16" json:"zipCode,omitempty"`
	Country string `gorm:"column:country;size:96" json:"country,omitempty"`
}

// Supplier is a directory entry; it is not a login account.
type Supplier struct {
	ID         string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Name       string    `gorm:"column:name;size:128;not null" json:"name"`
	Contact    string    `gorm:"column:contact;size:128;not null" json:"contact"`
	Email      string    `gorm:"column:email;size:191;not null;uniqueIndex:ux_suppliers_email" json:"email"`
	Phone      string    `gorm:"column:phone;size:32;not null" json:"phone"`
	Speciality string    `gorm:"column:speciality;size:128;not null" json:"speciality"`
	Rating     float64   `gorm:"column:rating;type:decimal(3,2);default:0" json:"rating"`
	Status     Status    `gorm:"column:status;size:16;not null;default:'Active';index:idx_suppliers_status" json:"status"`
	Address    Address   `gorm:"embedded" json:"address"`
	Website    string    `gorm:"column:website;size:255" json:"website,omitempty"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Supplier) TableName() string { return "suppliers" }

// StatusStat is one row of the per-status aggregate.
type StatusStat struct {
	Status        Status  `json:"status"`
	Count         int64   `json:"count"`
	AverageRating float64 `json:"avgRating"`
}
