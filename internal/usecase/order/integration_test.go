package order

import (
	"context"
	"testing"

	"zoo-procure-hub/internal/adapter/repository/mysql"
	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/user"
	"zoo-procure-hub/internal/infrastructure/db"
	invoiceUC "zoo-procure-hub/internal/usecase/invoice"
	"zoo-procure-hub/pkg/id"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// TestDeliveryAgainstSQLite runs the order and invoice usecases on real
// repositories to check the one-invoice-per-delivery guarantee end to end.
func TestDeliveryAgainstSQLite(t *testing.T) {
	gdb, err := db.OpenGormWithDialector(sqlite.Open(":memory:"), db.PoolOptions{MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	ctx := context.Background()

	users := mysql.NewUserRepository(gdb)
	mkUser := func(name string, role user.Role) *user.User {
		u := &user.User{ID: id.NewID32(), Username: name, Email: name + "@zoo.test", Password: "x", Name: name, Role: role, IsActive: true}
		require.NoError(t, users.Create(ctx, u))
		return u
	}
	sup := mkUser("acme", user.RoleSupplier)
	keeperUser := mkUser("kim", user.RoleStaff)
	boss := mkUser("boss", user.RoleAdmin)

	orders := mysql.NewOrderRepository(gdb)
	invoices := mysql.NewInvoiceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	gen := invoiceUC.NewUsecase(invoices, orders, tx)
	uc := NewUsecase(orders, users, invoices, tx, gen)

	o, err := uc.Create(ctx, keeperUser.ID, CreateInput{
		ItemName: "Alfalfa", Quantity: 2, Price: 100, Reason: "stock", Supplier: sup.ID, FeedType: "Forage",
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, o.TotalAmount)

	q := 3.0
	o, err = uc.Update(ctx, o.ID, UpdateInput{Quantity: &q})
	require.NoError(t, err)
	assert.Equal(t, 300.0, o.TotalAmount)

	_, err = uc.UpdateStatus(ctx, o.ID, order.StatusApproved, order.Actor{UserID: boss.ID, Role: user.RoleAdmin})
	require.NoError(t, err)
	supplierActor := order.Actor{UserID: sup.ID, Role: user.RoleSupplier}
	_, err = uc.UpdateStatus(ctx, o.ID, order.StatusAccepted, supplierActor)
	require.NoError(t, err)

	first, err := uc.UpdateStatus(ctx, o.ID, order.StatusDelivered, supplierActor)
	require.NoError(t, err)
	require.NotNil(t, first.Invoice)
	assert.True(t, first.InvoiceCreated)
	assert.Equal(t, "kim", first.Invoice.Customer)

	second, err := uc.UpdateStatus(ctx, o.ID, order.StatusDelivered, supplierActor)
	require.NoError(t, err)
	assert.False(t, second.InvoiceCreated)
	assert.Equal(t, first.Invoice.ID, second.Invoice.ID)

	all, err := invoices.List(ctx, invoice.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	inv := all[0]
	assert.Equal(t, o.ID, inv.OrderRef)
	assert.Equal(t, 300.0, inv.Amount)
	assert.Equal(t, invoice.StatusPendingVerification, inv.Status)
	assert.True(t, inv.DueDate.Equal(inv.ReceivedDate.Add(invoice.PaymentTerm)))

	assert.ErrorIs(t, uc.Delete(ctx, o.ID), order.ErrHasInvoice)
}
