package repository

import (
	"context"

	"github.com/iliyamo/festival-manager/internal/database"
	"github.com/iliyamo/festival-manager/internal/model"
)

// MerchRepo encapsulates queries on merch_tent and merch_item.
type MerchRepo struct {
	q Querier
	d database.Dialect
}

// ListTents returns every tent with the name of its stage.
func (r *MerchRepo) ListTents(ctx context.Context) ([]model.MerchTent, error) {
	const q = `SELECT m.tent_id, m.stage_id, m.number_of_workers, s.stage_name
	           FROM merch_tent m JOIN stage s ON m.stage_id = s.stage_id
	           ORDER BY m.tent_id`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MerchTent
	for rows.Next() {
		var t model.MerchTent
		if err := rows.Scan(&t.ID, &t.StageID, &t.NumberOfWorkers, &t.StageName); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListItems returns every item ordered by tent.
func (r *MerchRepo) ListItems(ctx context.Context) ([]model.MerchItem, error) {
	const q = `SELECT item_id, tent_id, item_name, item_type, number_remaining, price
	           FROM merch_item ORDER BY tent_id, item_id`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MerchItem
	for rows.Next() {
		var it model.MerchItem
		if err := rows.Scan(&it.ID, &it.TentID, &it.Name, &it.Type, &it.NumberRemaining, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTent inserts a tent and populates its ID.
func (r *MerchRepo) CreateTent(ctx context.Context, t *model.MerchTent) error {
	id, err := insert(ctx, r.q, r.d,
		"INSERT INTO merch_tent (stage_id, number_of_workers) VALUES (?, ?)",
		"tent_id", t.StageID, t.NumberOfWorkers)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

// CreateItem inserts an item and populates its ID.
func (r *MerchRepo) CreateItem(ctx context.Context, it *model.MerchItem) error {
	id, err := insert(ctx, r.q, r.d,
		"INSERT INTO merch_item (tent_id, item_name, item_type, number_remaining, price) VALUES (?, ?, ?, ?, ?)",
		"item_id", it.TentID, it.Name, it.Type, it.NumberRemaining, it.Price)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}
