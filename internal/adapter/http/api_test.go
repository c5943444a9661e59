package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zoo-procure-hub/internal/adapter/repository/mysql"
	"zoo-procure-hub/internal/infrastructure/auth"
	"zoo-procure-hub/internal/infrastructure/db"
	authuc "zoo-procure-hub/internal/usecase/auth"
	dashboarduc "zoo-procure-hub/internal/usecase/dashboard"
	feedtypeuc "zoo-procure-hub/internal/usecase/feedtype"
	invoiceuc "zoo-procure-hub/internal/usecase/invoice"
	orderuc "zoo-procure-hub/internal/usecase/order"
	supplieruc "zoo-procure-hub/internal/usecase/supplier"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

const (
	adminEmail    = "admin@zoo.test"
	adminPassword = "admin-pass"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Warning string          `json:"warning"`
	Details []FieldError    `json:"details"`
}

type testAPI struct {
	t *testing.T
	e *echo.Echo
}

// newTestAPI wires the real stack over an in-memory sqlite database.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gdb, err := db.OpenGormWithDialector(sqlite.Open(":memory:"), db.PoolOptions{MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	users := mysql.NewUserRepository(gdb)
	orders := mysql.NewOrderRepository(gdb)
	invoices := mysql.NewInvoiceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	jwt := auth.NewJWTManager("test-secret-0123456789", time.Hour)

	authUC := authuc.NewUsecase(users, jwt, auth.NewBcryptHasher(bcrypt.MinCost))
	_, err = authUC.EnsureAdmin(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)
	invoiceUC := invoiceuc.NewUsecase(invoices, orders, tx)

	e := echo.New()
	e.Validator = NewValidator()
	r := &Router{
		Health:    NewHandler(nil),
		Auth:      NewAuthHandler(authUC),
		Orders:    NewOrderHandler(orderuc.NewUsecase(orders, users, invoices, tx, invoiceUC)),
		Invoices:  NewInvoiceHandler(invoiceUC),
		FeedTypes: NewFeedTypeHandler(feedtypeuc.NewUsecase(mysql.NewFeedTypeRepository(gdb))),
		Suppliers: NewSupplierHandler(supplieruc.NewUsecase(mysql.NewSupplierRepository(gdb))),
		Dashboard: NewDashboardHandler(dashboarduc.NewUsecase(orders, invoices)),
		Tokens:    jwt,
	}
	r.Register(e)
	return &testAPI{t: t, e: e}
}

func (a *testAPI) call(method, path, token string, body any) (int, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage, key string) T {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	var out T
	require.NoError(t, json.Unmarshal(m[key], &out), "key %s", key)
	return out
}

type session struct {
	token string
	id    string
}

func (a *testAPI) register(username, role string) session {
	a.t.Helper()
	code, env := a.call(http.MethodPost, "/auth/register", "", map[string]any{
		"username": username, "email": username + "@zoo.test", "password": "secret1",
		"name": "Name " + username, "role": role,
	})
	require.Equal(a.t, http.StatusCreated, code, env.Message)
	u := decode[struct {
		ID string `json:"id"`
	}](a.t, env.Data, "user")
	return session{token: decode[string](a.t, env.Data, "token"), id: u.ID}
}

func (a *testAPI) login(login, password string) session {
	a.t.Helper()
	code, env := a.call(http.MethodPost, "/auth/login", "", map[string]any{"email": login, "password": password})
	require.Equal(a.t, http.StatusOK, code, env.Message)
	u := decode[struct {
		ID string `json:"id"`
	}](a.t, env.Data, "user")
	return session{token: decode[string](a.t, env.Data, "token"), id: u.ID}
}

type orderView struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
}

type invoiceView struct {
	ID            string   `json:"id"`
	OrderRef      string   `json:"orderId"`
	Status        string   `json:"status"`
	Amount        float64  `json:"amount"`
	Customer      string   `json:"customer"`
	VerifiedByID  *string  `json:"verifiedById"`
	Discrepancies []string `json:"discrepancies"`
}

func TestAPI_OrderToInvoiceLifecycle(t *testing.T) {
	api := newTestAPI(t)
	keeper := api.register("kim", "staff")
	acme := api.register("acme", "supplier")
	clerk := api.register("ivy", "invoice")
	boss := api.login(adminEmail, adminPassword)

	code, env := api.call(http.MethodPost, "/orders", keeper.token, map[string]any{
		"itemName": "Alfalfa", "quantity": 2, "price": 100, "reason": "weekly stock",
		"supplier": acme.id, "feedType": "Forage",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	o := decode[orderView](t, env.Data, "order")
	assert.Equal(t, "Pending", o.Status)
	assert.Equal(t, 200.0, o.TotalAmount)

	code, env = api.call(http.MethodPut, "/orders/"+o.ID, keeper.token, map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, 300.0, decode[orderView](t, env.Data, "order").TotalAmount)

	// the supplier cannot approve
	code, _ = api.call(http.MethodPut, "/orders/"+o.ID+"/status", acme.token, map[string]any{"status": "Approved"})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = api.call(http.MethodPut, "/orders/"+o.ID+"/status", boss.token, map[string]any{"status": "Approved"})
	require.Equal(t, http.StatusOK, code)
	code, _ = api.call(http.MethodPut, "/orders/"+o.ID+"/status", acme.token, map[string]any{"status": "Accepted"})
	require.Equal(t, http.StatusOK, code)

	code, env = api.call(http.MethodPut, "/orders/"+o.ID+"/status", acme.token, map[string]any{"status": "Delivered"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, orderuc.MsgDeliveredInvoice, env.Message)
	assert.Empty(t, env.Warning)
	inv := decode[invoiceView](t, env.Data, "invoice")
	assert.Equal(t, "Pending Verification", inv.Status)
	assert.Equal(t, 300.0, inv.Amount)
	assert.Equal(t, "Name kim", inv.Customer)
	assert.Equal(t, o.ID, inv.OrderRef)

	// a retried delivery returns the same invoice
	code, env = api.call(http.MethodPut, "/orders/"+o.ID+"/status", acme.token, map[string]any{"status": "Delivered"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, inv.ID, decode[invoiceView](t, env.Data, "invoice").ID)

	code, env = api.call(http.MethodGet, "/invoices/supplier-invoices", acme.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]invoiceView](t, env.Data, "invoices"), 1)

	// suppliers cannot verify
	code, _ = api.call(http.MethodPut, "/invoices/"+inv.ID+"/verify", acme.token, map[string]any{})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = api.call(http.MethodPut, "/invoices/"+inv.ID+"/verify", clerk.token, map[string]any{"verificationNotes": "ok"})
	require.Equal(t, http.StatusOK, code, env.Message)
	verified := decode[invoiceView](t, env.Data, "invoice")
	assert.Equal(t, "Verified", verified.Status)
	require.NotNil(t, verified.VerifiedByID)
	assert.Equal(t, clerk.id, *verified.VerifiedByID)

	code, env = api.call(http.MethodPut, "/invoices/"+inv.ID+"/discrepancy", clerk.token, map[string]any{"discrepancy": "short by 1 tonne"})
	require.Equal(t, http.StatusOK, code, env.Message)
	flagged := decode[invoiceView](t, env.Data, "invoice")
	assert.Equal(t, "Discrepancy", flagged.Status)
	assert.Equal(t, []string{"short by 1 tonne"}, flagged.Discrepancies)
	require.NotNil(t, flagged.VerifiedByID)

	// Discrepancy -> Paid is not in the table
	code, env = api.call(http.MethodPut, "/invoices/"+inv.ID+"/status", clerk.token, map[string]any{"status": "Paid"})
	assert.Equal(t, http.StatusConflict, code, env.Message)

	// an invoiced order cannot be deleted
	code, _ = api.call(http.MethodDelete, "/orders/"+o.ID, boss.token, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, env = api.call(http.MethodGet, "/dashboard/summary", boss.token, nil)
	require.Equal(t, http.StatusOK, code)
	var summary dashboarduc.Summary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.Len(t, summary.Orders, 1)
	assert.EqualValues(t, 1, summary.Orders[0].Count)
	require.Len(t, summary.Invoices, 1)
}

func TestAPI_AuthAndErrors(t *testing.T) {
	api := newTestAPI(t)
	keeper := api.register("kim", "staff")

	code, env := api.call(http.MethodPost, "/auth/register", "", map[string]any{
		"username": "kim2", "email": "kim@zoo.test", "password": "secret1", "name": "Kim",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "User already exists with this email", env.Message)
	assert.False(t, env.Success)

	code, env = api.call(http.MethodPost, "/auth/register", "", map[string]any{"email": "bad", "password": "1"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.True(t, containsFieldMsg(env.Details, "username", "is required"))
	assert.True(t, containsFieldMsg(env.Details, "password", "at least 6"))

	code, _ = api.call(http.MethodPost, "/auth/login", "", map[string]any{"email": "kim", "password": "wrong1"})
	assert.Equal(t, http.StatusUnauthorized, code)
	byUsername := api.login("kim", "secret1")
	assert.Equal(t, keeper.id, byUsername.id)

	code, _ = api.call(http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = api.call(http.MethodGet, "/auth/users", keeper.token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = api.call(http.MethodGet, "/orders/ffffffffffffffffffffffffffffffff", keeper.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order not found", env.Message)

	code, env = api.call(http.MethodGet, "/orders/status/Shipped", keeper.token, nil)
	assert.Equal(t, http.StatusBadRequest, code, env.Message)

	code, env = api.call(http.MethodGet, "/invoices/status/Pending%20Verification", keeper.token, nil)
	assert.Equal(t, http.StatusOK, code, env.Message)

	code, env = api.call(http.MethodPut, "/auth/profile", keeper.token, map[string]any{"name": "Kim Keeper"})
	require.Equal(t, http.StatusOK, code, env.Message)
	code, env = api.call(http.MethodGet, "/auth/profile", keeper.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Kim Keeper", decode[struct {
		Name string `json:"name"`
	}](t, env.Data, "user").Name)
}

func TestAPI_Catalog(t *testing.T) {
	api := newTestAPI(t)
	keeper := api.register("kim", "staff")
	boss := api.login(adminEmail, adminPassword)

	body := map[string]any{"name": "Timothy Hay", "pricePerTonne": 300, "category": "Forage"}
	code, _ := api.call(http.MethodPost, "/feed-types", keeper.token, body)
	assert.Equal(t, http.StatusForbidden, code)
	code, env := api.call(http.MethodPost, "/feed-types", boss.token, body)
	require.Equal(t, http.StatusCreated, code, env.Message)
	code, _ = api.call(http.MethodPost, "/feed-types", boss.token, body)
	assert.Equal(t, http.StatusConflict, code)

	code, env = api.call(http.MethodGet, "/feed-types/category/forage", keeper.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]json.RawMessage](t, env.Data, "feedTypes"), 1)

	code, env = api.call(http.MethodPost, "/suppliers", boss.token, map[string]any{
		"name": "Acme", "contact": "Pat", "email": "acme@x.test", "phone": "555", "speciality": "Hay",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	sup := decode[struct {
		ID string `json:"id"`
	}](t, env.Data, "supplier")

	code, _ = api.call(http.MethodPut, "/suppliers/"+sup.ID+"/rating", keeper.token, map[string]any{"rating": 7})
	assert.Equal(t, http.StatusBadRequest, code)
	code, env = api.call(http.MethodPut, "/suppliers/"+sup.ID+"/rating", keeper.token, map[string]any{"rating": 4.5})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, _ = api.call(http.MethodDelete, "/suppliers/"+sup.ID, boss.token, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = api.call(http.MethodGet, "/suppliers", keeper.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]json.RawMessage](t, env.Data, "suppliers"))
}

func TestAPI_SuppliersSeeOnlyTheirOwnRecords(t *testing.T) {
	api := newTestAPI(t)
	keeper := api.register("kim", "staff")
	acme := api.register("acme", "supplier")
	rival := api.register("rival", "supplier")
	boss := api.login(adminEmail, adminPassword)

	code, env := api.call(http.MethodPost, "/orders", keeper.token, map[string]any{
		"itemName": "Alfalfa", "quantity": 2, "price": 100, "reason": "weekly stock",
		"supplier": acme.id, "feedType": "Forage",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	o := decode[orderView](t, env.Data, "order")

	code, env = api.call(http.MethodGet, "/orders/status/Pending", rival.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]orderView](t, env.Data, "orders"))
	code, env = api.call(http.MethodGet, "/orders/status/Pending", acme.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]orderView](t, env.Data, "orders"), 1)

	code, env = api.call(http.MethodGet, "/orders/"+o.ID, rival.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order not found", env.Message)
	code, _ = api.call(http.MethodGet, "/orders/"+o.ID, acme.token, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = api.call(http.MethodGet, "/orders/"+o.ID, keeper.token, nil)
	assert.Equal(t, http.StatusOK, code)

	for _, step := range []struct {
		token  string
		status string
	}{{boss.token, "Approved"}, {acme.token, "Accepted"}, {acme.token, "Delivered"}} {
		code, env = api.call(http.MethodPut, "/orders/"+o.ID+"/status", step.token, map[string]any{"status": step.status})
		require.Equal(t, http.StatusOK, code, env.Message)
	}
	inv := decode[invoiceView](t, env.Data, "invoice")

	code, env = api.call(http.MethodGet, "/invoices/status/Pending%20Verification", rival.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]invoiceView](t, env.Data, "invoices"))
	code, env = api.call(http.MethodGet, "/invoices/status/Pending%20Verification", acme.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]invoiceView](t, env.Data, "invoices"), 1)

	code, env = api.call(http.MethodGet, "/invoices/"+inv.ID, rival.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Invoice not found", env.Message)
	code, _ = api.call(http.MethodGet, "/invoices/"+inv.ID, acme.token, nil)
	assert.Equal(t, http.StatusOK, code)
}
