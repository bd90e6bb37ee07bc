package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/iliyamo/festival-manager/internal/config"
)

// DSN builds the connection string for cfg.Driver.  A non-empty cfg.URL is
// returned unchanged.
func DSN(cfg config.DBConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	switch cfg.Driver {
	case config.DriverMySQL:
		auth := cfg.User
		if cfg.Pass != "" {
			auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
		}
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, cfg.Host, port, cfg.Name)
	case config.DriverSQLite:
		if strings.Contains(cfg.Name, "?") {
			return cfg.Name
		}
		return "file:" + cfg.Name + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		u := url.URL{Scheme: "postgresql", Host: cfg.Host, Path: "/" + cfg.Name}
		if cfg.Port != "" {
			u.Host = net.JoinHostPort(cfg.Host, cfg.Port)
		}
		if cfg.Pass != "" {
			u.User = url.UserPassword(cfg.User, cfg.Pass)
		} else {
			u.User = url.User(cfg.User)
		}
		if cfg.SSLMode != "" {
			u.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
		}
		return u.String()
	}
}

// Open connects to the configured database and verifies the connection.
func Open(cfg config.DBConfig) (*sql.DB, Dialect, error) {
	d := Dialect{Driver: cfg.Driver}
	db, err := sql.Open(d.driverName(), DSN(cfg))
	if err != nil {
		return nil, d, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	// Pool settings
	if cfg.Driver == config.DriverSQLite {
		// one writer at a time; the single conn also keeps :memory: alive
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, d, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, d, nil
}
