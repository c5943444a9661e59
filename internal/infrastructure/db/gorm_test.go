package db

import (
	"errors"
	"testing"

	"zoo-procure-hub/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial, PoolOptions{MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 5 {
		t.Fatalf("max open conns = %d, want 5", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDialector_ByDriver(t *testing.T) {
	cases := []struct {
		driver string
		want   string
	}{
		{config.DriverMySQL, mysql.Dialector{}.Name()},
		{config.DriverPostgres, postgres.Dialector{}.Name()},
		{config.DriverSQLite, sqlite.Dialector{}.Name()},
	}
	for _, tc := range cases {
		cfg := &config.Config{
			DBDriver:    tc.driver,
			MySQLHost:   "db",
			MySQLPort:   "3306",
			MySQLDB:     "procurement",
			MySQLUser:   "u",
			PostgresDSN: "host=db user=u dbname=procurement sslmode=disable",
			SQLitePath:  ":memory:",
		}
		d, err := Dialector(cfg)
		if err != nil {
			t.Fatalf("%s: %v", tc.driver, err)
		}
		if d.Name() != tc.want {
			t.Fatalf("%s: dialector = %s", tc.driver, d.Name())
		}
	}

	if _, err := Dialector(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenGorm_SQLiteAutoMigrate(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: ":memory:", DBMaxOpenConns: 1}
	gdb, err := OpenGorm(cfg)
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	if err := AutoMigrate(gdb); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	for _, table := range []string{"users", "suppliers", "feed_types", "orders", "invoices"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}
