package repository

import (
	"context"

	"github.com/iliyamo/festival-manager/internal/database"
	"github.com/iliyamo/festival-manager/internal/model"
)

// TicketRepo encapsulates all queries on the ticket table.
type TicketRepo struct {
	q Querier
	d database.Dialect
}

// List returns every ticket grouped by ticket type.
func (r *TicketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	const q = `SELECT ticket_id, ticket_type, purchaser_name, purchaser_age
	           FROM ticket ORDER BY ticket_type, ticket_id`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Ticket
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.Type, &t.PurchaserName, &t.PurchaserAge); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a ticket.  On success the ticket's ID field is populated
// with the generated value.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	id, err := insert(ctx, r.q, r.d,
		"INSERT INTO ticket (ticket_type, purchaser_name, purchaser_age) VALUES (?, ?, ?)",
		"ticket_id", t.Type, t.PurchaserName, t.PurchaserAge)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}
