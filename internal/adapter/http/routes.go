package http

import (
	"time"

	"zoo-procure-hub/internal/adapter/middleware"
	"zoo-procure-hub/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Router bundles everything the route table needs.
type Router struct {
	Health    *Handler
	Auth      *AuthHandler
	Orders    *OrderHandler
	Invoices  *InvoiceHandler
	FeedTypes *FeedTypeHandler
	Suppliers *SupplierHandler
	Dashboard *DashboardHandler

	Tokens  middleware.TokenParser
	Redis   *redis.Client // nil disables idempotency replay
	IdemTTL time.Duration
	Metrics echo.HandlerFunc
}

// Register mounts the API. Reads are open to any signed-in user; writes are
// gated by the role that owns the step.
func (r *Router) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", r.Metrics)
	}

	authn := middleware.AuthJWT(r.Tokens)
	idem := middleware.Idempotency(r.Redis, r.IdemTTL)
	admin := middleware.RequireRoles(user.RoleAdmin)
	staffOrAdmin := middleware.RequireRoles(user.RoleStaff, user.RoleAdmin)
	suppliers := middleware.RequireRoles(user.RoleSupplier)
	invoiceAuthors := middleware.RequireRoles(user.RoleSupplier, user.RoleAdmin)
	verifiers := middleware.RequireRoles(user.RoleInvoice, user.RoleAdmin)

	a := e.Group("/auth")
	a.POST("/register", r.Auth.Register)
	a.POST("/login", r.Auth.Login)
	a.GET("/profile", r.Auth.Profile, authn)
	a.PUT("/profile", r.Auth.UpdateProfile, authn)
	a.GET("/users", r.Auth.ListUsers, authn, admin)
	a.GET("/users/role/:role", r.Auth.ListUsersByRole, authn, admin)
	a.PUT("/users/:userId", r.Auth.UpdateUser, authn, admin)
	a.DELETE("/users/:userId", r.Auth.DeleteUser, authn, admin)
	a.GET("/suppliers", r.Auth.ListSuppliers, authn)
	a.GET("/suppliers/speciality/:speciality", r.Auth.SearchSuppliers, authn)

	o := e.Group("/orders", authn, idem)
	o.POST("", r.Orders.CreateOrder, staffOrAdmin)
	o.GET("", r.Orders.ListOrders)
	o.GET("/my-orders", r.Orders.MyOrders)
	o.GET("/supplier-orders", r.Orders.SupplierOrders, suppliers)
	o.GET("/status/:status", r.Orders.OrdersByStatus)
	o.GET("/stats", r.Orders.OrderStats)
	o.GET("/:id", r.Orders.GetOrder)
	o.PUT("/:id", r.Orders.UpdateOrder, staffOrAdmin)
	// per-transition role checks live in the order domain
	o.PUT("/:id/status", r.Orders.UpdateOrderStatus)
	o.DELETE("/:id", r.Orders.DeleteOrder, admin)

	i := e.Group("/invoices", authn, idem)
	i.POST("", r.Invoices.CreateInvoice, invoiceAuthors)
	i.GET("", r.Invoices.ListInvoices)
	i.GET("/supplier-invoices", r.Invoices.SupplierInvoices, suppliers)
	i.GET("/status/:status", r.Invoices.InvoicesByStatus)
	i.GET("/stats", r.Invoices.InvoiceStats)
	i.GET("/:id", r.Invoices.GetInvoice)
	i.PUT("/:id", r.Invoices.UpdateInvoice, verifiers)
	i.PUT("/:id/status", r.Invoices.UpdateInvoiceStatus, verifiers)
	i.PUT("/:id/verify", r.Invoices.VerifyInvoice, verifiers)
	i.PUT("/:id/discrepancy", r.Invoices.AddDiscrepancy, verifiers)
	i.DELETE("/:id", r.Invoices.DeleteInvoice, admin)

	f := e.Group("/feed-types", authn, idem)
	f.POST("", r.FeedTypes.CreateFeedType, admin)
	f.GET("", r.FeedTypes.ListFeedTypes)
	f.GET("/category/:category", r.FeedTypes.FeedTypesByCategory)
	f.GET("/stats", r.FeedTypes.FeedTypeStats)
	f.GET("/:id", r.FeedTypes.GetFeedType)
	f.PUT("/:id", r.FeedTypes.UpdateFeedType, admin)
	f.DELETE("/:id", r.FeedTypes.DeleteFeedType, admin)

	s := e.Group("/suppliers", authn, idem)
	s.POST("", r.Suppliers.CreateSupplier, admin)
	s.GET("", r.Suppliers.ListSuppliers)
	s.GET("/speciality/:speciality", r.Suppliers.SuppliersBySpeciality)
	s.GET("/stats", r.Suppliers.SupplierStats)
	s.GET("/:id", r.Suppliers.GetSupplier)
	s.PUT("/:id", r.Suppliers.UpdateSupplier, admin)
	s.PUT("/:id/rating", r.Suppliers.UpdateRating, staffOrAdmin)
	s.DELETE("/:id", r.Suppliers.DeleteSupplier, admin)

	e.GET("/dashboard/summary", r.Dashboard.Summary, authn)
}
