package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpadp "zoo-procure-hub/internal/adapter/http"
	"zoo-procure-hub/internal/adapter/middleware"
	"zoo-procure-hub/internal/adapter/repository/mysql"
	"zoo-procure-hub/internal/config"
	"zoo-procure-hub/internal/infrastructure/auth"
	"zoo-procure-hub/internal/infrastructure/cache"
	"zoo-procure-hub/internal/infrastructure/db"
	"zoo-procure-hub/internal/infrastructure/logger"
	"zoo-procure-hub/internal/infrastructure/metrics"
	"zoo-procure-hub/internal/infrastructure/notify"
	authuc "zoo-procure-hub/internal/usecase/auth"
	dashboarduc "zoo-procure-hub/internal/usecase/dashboard"
	feedtypeuc "zoo-procure-hub/internal/usecase/feedtype"
	invoiceuc "zoo-procure-hub/internal/usecase/invoice"
	orderuc "zoo-procure-hub/internal/usecase/order"
	supplieruc "zoo-procure-hub/internal/usecase/supplier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(gdb); err != nil {
			return err
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
	} else {
		log.Warn("REDIS_ADDR empty, idempotency replay disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	notifier := notify.NewLogNotifier(log)

	users := mysql.NewUserRepository(gdb)
	orders := mysql.NewOrderRepository(gdb)
	invoices := mysql.NewInvoiceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	invoiceUC := invoiceuc.NewUsecase(invoices, orders, tx,
		invoiceuc.WithNotifier(notifier),
		invoiceuc.WithRecorder(m),
		invoiceuc.WithLogger(log.Named("invoice")),
	)
	orderUC := orderuc.NewUsecase(orders, users, invoices, tx, invoiceUC,
		orderuc.WithNotifier(notifier),
		orderuc.WithRecorder(m),
		orderuc.WithLogger(log.Named("order")),
	)

	tokens := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	authUC := authuc.NewUsecase(users, tokens, auth.NewBcryptHasher(cfg.BcryptCost))
	if cfg.AdminEmail != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info("admin account created", zap.String("email", cfg.AdminEmail))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		echomw.CORS(),
		middleware.RequestID(),
		logger.Middleware(log),
		m.Middleware(),
	)

	r := &httpadp.Router{
		Health:    httpadp.NewHandler(sqlDB.PingContext),
		Auth:      httpadp.NewAuthHandler(authUC),
		Orders:    httpadp.NewOrderHandler(orderUC),
		Invoices:  httpadp.NewInvoiceHandler(invoiceUC),
		FeedTypes: httpadp.NewFeedTypeHandler(feedtypeuc.NewUsecase(mysql.NewFeedTypeRepository(gdb))),
		Suppliers: httpadp.NewSupplierHandler(supplieruc.NewUsecase(mysql.NewSupplierRepository(gdb))),
		Dashboard: httpadp.NewDashboardHandler(dashboarduc.NewUsecase(orders, invoices)),
		Tokens:    tokens,
		Redis:     rdb,
		IdemTTL:   time.Duration(cfg.IdempTTLSecs) * time.Second,
		Metrics:   m.Handler(),
	}
	r.Register(e)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.Info("listening", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
