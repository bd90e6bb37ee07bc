package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/festival-manager/internal/view"
)

// ErrorHandler renders errors with the error page.  Nothing is written if
// the handler already started the response.
func ErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := ""
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok && m != http.StatusText(code) {
				msg = m
			}
		} else {
			logger.Error("unhandled error", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.Render(code, "error", view.NewErrorPage(code, msg))
		}
		if err != nil {
			logger.Error("render error page failed", "err", err)
			_ = c.String(code, http.StatusText(code))
		}
	}
}
