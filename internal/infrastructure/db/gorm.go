package db

import (
	"fmt"
	"time"

	"zoo-procure-hub/internal/config"
	"zoo-procure-hub/internal/domain/feedtype"
	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/supplier"
	"zoo-procure-hub/internal/domain/user"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
}

var defaultPool = PoolOptions{MaxOpenConns: 30, MaxIdleConns: 10}

// Dialector picks the gorm driver named by cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.PostgresDSN), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func OpenGorm(cfg *config.Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	pool := PoolOptions{MaxOpenConns: cfg.DBMaxOpenConns, MaxIdleConns: cfg.DBMaxIdleConns}
	db, err := OpenGormWithDialector(dial, pool)
	if err != nil {
		return nil, err
	}
	zap.L().Info("gorm: connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func OpenGormWithDialector(dial gorm.Dialector, opts ...PoolOptions) (*gorm.DB, error) {
	pool := defaultPool
	if len(opts) > 0 {
		pool = opts[0]
	}

	// the explicit ping below is the only one, after the pool is sized
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:               NewGormLogger(zap.L(), gormlogger.Warn),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Models lists every persisted aggregate in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&supplier.Supplier{},
		&feedtype.FeedType{},
		&order.Order{},
		&invoice.Invoice{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
