// Package router builds the echo instance and maps every route to its
// handler and middleware.
package router

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/festival-manager/internal/config"
	"github.com/iliyamo/festival-manager/internal/handler"
	"github.com/iliyamo/festival-manager/internal/middleware"
	"github.com/iliyamo/festival-manager/internal/view"
)

// Options carries everything New wires together.  Redis may be nil, which
// turns the page cache and the rate limiter off.
type Options struct {
	DB        *sql.DB
	Handler   *handler.Handler
	Logger    *log.Logger
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Debug     bool
	Threaded  bool
}

// New returns a ready echo instance serving the festival site.
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = opts.Debug
	e.Renderer = view.MustNew()
	e.HTTPErrorHandler = handler.ErrorHandler(opts.Logger)

	e.Use(echomw.Recover())
	e.Use(requestLogger(opts.Logger))
	if !opts.Threaded {
		e.Use(middleware.Serialize())
	}
	if opts.Debug {
		e.Use(middleware.QueryArgs(opts.Logger))
	}

	conn := middleware.DBConn(opts.DB, opts.Logger)
	RegisterRoutes(e, opts.Handler, conn)
	RegisterPages(e, opts.Handler, middleware.NewRedisCache(opts.Cache, opts.Redis, opts.Logger), conn)
	RegisterForms(e, opts.Handler,
		middleware.NewTokenBucket(opts.RateLimit, opts.Redis, opts.Logger),
		conn,
		middleware.InvalidateOnWrite(opts.Cache, opts.Redis, opts.Logger),
	)
	return e
}

// RegisterRoutes maps the routes that are never cached or limited.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, conn echo.MiddlewareFunc) {
	e.GET("/healthz", h.Health, conn)
	e.GET("/login", h.Login)
	e.POST("/login", h.Login)
}

// RegisterPages maps the read-only pages.  mw runs in order before each
// handler; the cache goes first so a hit never takes a connection.
func RegisterPages(e *echo.Echo, h *handler.Handler, mw ...echo.MiddlewareFunc) {
	e.GET("/", h.Index, mw...)
	e.GET("/another", h.Another, mw...)
	e.GET("/tickets", h.Tickets, mw...)
	e.GET("/stages", h.Stages, mw...)
	e.GET("/artist/:id", h.Artist, mw...)
	e.GET("/merch", h.Merch, mw...)
	e.GET("/food", h.Food, mw...)
	e.GET("/stand/:id", h.Stand, mw...)
	e.GET("/add_data", h.AddData, mw...)
	e.GET("/add_merch", h.AddMerchForm, mw...)
	e.GET("/add_food", h.AddFoodForm, mw...)
	e.GET("/add_ticket", h.AddTicketForm, mw...)
}

// RegisterForms maps the write routes.  Each redirects home on success.
func RegisterForms(e *echo.Echo, h *handler.Handler, mw ...echo.MiddlewareFunc) {
	e.POST("/add", h.AddName, mw...)
	e.POST("/add_tent", h.AddTent, mw...)
	e.POST("/add_item", h.AddItem, mw...)
	e.POST("/add_ticket", h.AddTicket, mw...)
	e.POST("/add_concession", h.AddConcession, mw...)
	e.POST("/add_stand", h.AddStand, mw...)
	e.POST("/add_dish", h.AddDish, mw...)
}

func requestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,

		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			l := logger.With("method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "remote_ip", v.RemoteIP)
			if v.Error != nil {
				l.Warn("request", "err", v.Error)
				return nil
			}
			l.Info("request")
			return nil
		},
	})
}
