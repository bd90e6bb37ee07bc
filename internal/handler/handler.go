// Package handler serves the festival pages and the forms that add rows.
// Every handler works over the single connection the DBConn middleware
// acquired for the request.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/festival-manager/internal/database"
	"github.com/iliyamo/festival-manager/internal/middleware"
	"github.com/iliyamo/festival-manager/internal/repository"
	"github.com/iliyamo/festival-manager/internal/service"
)

// ErrNoConnection means the request started without a database connection.
var ErrNoConnection = errors.New("no database connection for request")

const dbTimeout = 5 * time.Second

// Handler bundles what every route needs.
type Handler struct {
	Dialect   database.Dialect
	Publisher service.Publisher
	Logger    *log.Logger
}

// New returns a Handler.  A nil publisher drops events.
func New(d database.Dialect, pub service.Publisher, logger *log.Logger) *Handler {
	if pub == nil {
		pub = service.NopPublisher{}
	}
	return &Handler{Dialect: d, Publisher: pub, Logger: logger}
}

// withStore runs fn with repositories over the request's connection and a
// context bounded by dbTimeout.  Errors come back as *echo.HTTPError.
func (h *Handler) withStore(c echo.Context, fn func(ctx context.Context, s *repository.Store) error) error {
	conn, ok := middleware.ConnFrom(c)
	if !ok {
		return h.fail(c, ErrNoConnection)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := fn(ctx, repository.NewStore(conn, h.Dialect)); err != nil {
		return h.fail(c, err)
	}
	return nil
}

// fail turns a data access error into the HTTP error the error page renders.
func (h *Handler) fail(c echo.Context, err error) error {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, ErrNoConnection):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "The database is unavailable, try again shortly.").SetInternal(err)
	case errors.Is(err, repository.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	default:
		h.Logger.Error("query failed", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "The id must be a positive number.")
	}
	return id, nil
}

// Health reports whether the request could reach the database.
func (h *Handler) Health(c echo.Context) error {
	conn, ok := middleware.ConnFrom(c)
	if !ok {
		return c.String(http.StatusServiceUnavailable, "database unavailable")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		return c.String(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.String(http.StatusOK, "ok")
}

// Login always rejects: the site has no accounts.
func (h *Handler) Login(c echo.Context) error {
	return echo.NewHTTPError(http.StatusUnauthorized, "Logging in is not supported.")
}
