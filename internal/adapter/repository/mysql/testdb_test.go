package mysql

import (
	"context"
	"testing"
	"time"

	"zoo-procure-hub/internal/domain/feedtype"
	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/supplier"
	"zoo-procure-hub/internal/domain/user"
	"zoo-procure-hub/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
// One connection only, so every query sees the same in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&user.User{}, &supplier.Supplier{}, &feedtype.FeedType{}, &order.Order{}, &invoice.Invoice{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{
		ID:       id.NewID32(),
		Username: username,
		Email:    username + "@zoo.test",
		Password: "x",
		Name:     "Name " + username,
		Role:     role,
		IsActive: true,
	}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func makeOrder(supplierID, requesterID string, status order.Status) *order.Order {
	o := &order.Order{
		ID:          id.NewID32(),
		OrderID:     id.OrderID(time.Now()),
		ItemName:    "Alfalfa",
		Quantity:    2,
		Price:       100,
		Reason:      "weekly stock",
		SupplierID:  supplierID,
		RequesterID: requesterID,
		FeedType:    "Hay",
		Status:      status,
		Priority:    order.PriorityMedium,
	}
	o.Recompute()
	return o
}

func seedOrder(t *testing.T, db *gorm.DB, supplierID, requesterID string, status order.Status) *order.Order {
	t.Helper()
	o := makeOrder(supplierID, requesterID, status)
	if err := NewOrderRepository(db).Create(context.Background(), o); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}
