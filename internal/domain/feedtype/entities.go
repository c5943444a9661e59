package feedtype

import (
	"time"

	"zoo-procure-hub/internal/domain/apperr"
)

var (
	ErrNotFound      = apperr.NotFound("Feed type not found")
	ErrAlreadyExists = apperr.Conflict("Feed type with this name already exists")
)

type FeedType struct {
	ID            string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Name          string    `gorm:"column:name;size:128;not null;uniqueIndex:ux_feed_types_name" json:"name"`
	PricePerTonne float64   `gorm:"column:price_per_tonne;type:decimal(18,2);not null" json:"pricePerTonne"`
	Description   string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Category      string    `gorm:"column:category;size:96;not null;index:idx_feed_types_category" json:"category"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (FeedType) TableName() string { return "feed_types" }

type CategoryStat struct {
	Category     string  `json:"category"`
	Count        int64   `json:"count"`
	AveragePrice float64 `json:"avgPrice"`
}
