package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// form reads url-encoded fields, keeping the first problem it meets and
// every value it read for the activity event.
type form struct {
	c      echo.Context
	err    error
	values map[string]string
}

func newForm(c echo.Context) *form {
	return &form{c: c, values: make(map[string]string)}
}

func (f *form) fail(name, problem string) {
	if f.err == nil {
		f.err = fmt.Errorf("%s %s", name, problem)
	}
}

// str returns a required, trimmed text field.
func (f *form) str(name string) string {
	v := strings.TrimSpace(f.c.FormValue(name))
	if v == "" {
		f.fail(name, "is required")
	}
	f.values[name] = v
	return v
}

// id returns a required positive integer, a reference to another row.
func (f *form) id(name string) int64 {
	s := f.str(name)
	n, err := strconv.ParseInt(s, 10, 64)
	if s != "" && (err != nil || n <= 0) {
		f.fail(name, "must be a positive whole number")
	}
	return n
}

// count returns a required non-negative integer.
func (f *form) count(name string) int {
	s := f.str(name)
	n, err := strconv.Atoi(s)
	if s != "" && (err != nil || n < 0) {
		f.fail(name, "must be a whole number of zero or more")
	}
	return n
}

// price returns a required non-negative amount.
func (f *form) price(name string) float64 {
	s := f.str(name)
	v, err := strconv.ParseFloat(s, 64)
	if s != "" && (err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v)) {
		f.fail(name, "must be an amount of zero or more")
	}
	return v
}

// check reports the first invalid field as a 400.
func (f *form) check() error {
	if f.err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form: "+f.err.Error()+".")
	}
	return nil
}
