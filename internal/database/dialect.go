package database

import (
	"strconv"
	"strings"

	"github.com/iliyamo/festival-manager/internal/config"
)

// Dialect papers over the few SQL differences between the supported
// drivers.  Queries are written with ? placeholders and rebound here.
type Dialect struct {
	Driver string
}

func (d Dialect) driverName() string {
	switch d.Driver {
	case config.DriverMySQL:
		return "mysql"
	case config.DriverSQLite:
		return "sqlite"
	default:
		return "postgres"
	}
}

// Rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL and returns
// the query unchanged for the other drivers.  Placeholders inside single
// quoted literals are left alone.
func (d Dialect) Rebind(q string) string {
	if d.Driver != config.DriverPostgres && d.Driver != "" {
		return q
	}
	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	quoted := false
	for i := 0; i < len(q); i++ {
		ch := q[i]
		switch {
		case ch == '\'':
			quoted = !quoted
			b.WriteByte(ch)
		case ch == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// Returning reports whether inserts report generated keys through a
// RETURNING clause rather than sql.Result.LastInsertId.
func (d Dialect) Returning() bool {
	return d.Driver != config.DriverMySQL
}
