// Package middleware holds the echo middleware the festival site runs:
// per-request database connections, request serialisation, the Redis page
// cache and the Redis token bucket guarding the form routes.
package middleware

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

const connKey = "db_conn"

// DBConn acquires one connection from db before the handler runs and
// releases it afterwards, whatever the handler returned.  When no connection
// can be acquired the failure is logged and the request continues without
// one; handlers that need the database answer 503.
func DBConn(db *sql.DB, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			conn, err := db.Conn(c.Request().Context())
			if err != nil {
				logger.Error("db: acquire connection failed", "path", c.Path(), "err", err)
				return next(c)
			}
			defer func() {
				if err := conn.Close(); err != nil {
					logger.Debug("db: release connection failed", "err", err)
				}
			}()
			c.Set(connKey, conn)
			return next(c)
		}
	}
}

// ConnFrom returns the connection DBConn attached to c, if any.
func ConnFrom(c echo.Context) (*sql.Conn, bool) {
	conn, ok := c.Get(connKey).(*sql.Conn)
	return conn, ok && conn != nil
}

// Serialize runs at most one request at a time.
func Serialize() echo.MiddlewareFunc {
	var mu sync.Mutex
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mu.Lock()
			defer mu.Unlock()
			return next(c)
		}
	}
}

// QueryArgs logs the query string arguments of every request at debug level.
func QueryArgs(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if args := c.QueryParams(); len(args) > 0 {
				logger.Debug("request args", "method", c.Request().Method, "path", c.Request().URL.Path, "args", args.Encode())
			}
			return next(c)
		}
	}
}

