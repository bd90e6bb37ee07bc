package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/festival-manager/internal/database"
)

// Querier is the subset of database/sql shared by *sql.DB, *sql.Conn and
// *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles every repository over one Querier.
type Store struct {
	Tests   *TestRepo
	Tickets *TicketRepo
	Stages  *StageRepo
	Artists *ArtistRepo
	Songs   *SongRepo
	Merch   *MerchRepo
	Food    *FoodRepo
}

// NewStore builds all repositories over q.  It is cheap enough to call once
// per request.
func NewStore(q Querier, d database.Dialect) *Store {
	return &Store{
		Tests:   &TestRepo{q: q, d: d},
		Tickets: &TicketRepo{q: q, d: d},
		Stages:  &StageRepo{q: q, d: d},
		Artists: &ArtistRepo{q: q, d: d},
		Songs:   &SongRepo{q: q, d: d},
		Merch:   &MerchRepo{q: q, d: d},
		Food:    &FoodRepo{q: q, d: d},
	}
}

// insert runs an INSERT and returns the key the database generated for pk.
func insert(ctx context.Context, q Querier, d database.Dialect, query, pk string, args ...any) (int64, error) {
	if d.Returning() {
		var id int64
		if err := q.QueryRowContext(ctx, d.Rebind(query+" RETURNING "+pk), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := q.ExecContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// TestRepo reads and writes the demo test table.
type TestRepo struct {
	q Querier
	d database.Dialect
}

// Names returns every name in insertion order.
func (r *TestRepo) Names(ctx context.Context) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, "SELECT name FROM test ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name.String)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add inserts a name and returns its generated id.
func (r *TestRepo) Add(ctx context.Context, name string) (int64, error) {
	return insert(ctx, r.q, r.d, "INSERT INTO test (name) VALUES (?)", "id", name)
}
