package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/festival-manager/internal/database"
	"github.com/iliyamo/festival-manager/internal/model"
)

// FoodRepo encapsulates queries on concession_area, stand and dish.
type FoodRepo struct {
	q Querier
	d database.Dialect
}

// ListAreas returns every concession area.
func (r *FoodRepo) ListAreas(ctx context.Context) ([]model.ConcessionArea, error) {
	const q = `SELECT area_id, stage_id, area_name, number_of_stands
	           FROM concession_area ORDER BY area_id`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ConcessionArea
	for rows.Next() {
		var a model.ConcessionArea
		if err := rows.Scan(&a.ID, &a.StageID, &a.Name, &a.NumberOfStands); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAreaStages returns the stage name each area serves.
func (r *FoodRepo) ListAreaStages(ctx context.Context) ([]model.AreaStage, error) {
	const q = `SELECT c.area_id, s.stage_name
	           FROM stage s JOIN concession_area c ON s.stage_id = c.stage_id`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AreaStage
	for rows.Next() {
		var as model.AreaStage
		if err := rows.Scan(&as.AreaID, &as.StageName); err != nil {
			return nil, err
		}
		out = append(out, as)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStands returns every stand ordered by area.
func (r *FoodRepo) ListStands(ctx context.Context) ([]model.Stand, error) {
	rows, err := r.q.QueryContext(ctx, "SELECT stand_id, area_id, stand_name FROM stand ORDER BY area_id, stand_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Stand
	for rows.Next() {
		var s model.Stand
		if err := rows.Scan(&s.ID, &s.AreaID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStand fetches a stand with its area name.  It returns ErrNotFound if
// no row matches.
func (r *FoodRepo) GetStand(ctx context.Context, id int64) (*model.Stand, error) {
	const q = `SELECT s.stand_id, s.area_id, s.stand_name, c.area_name
	           FROM stand s JOIN concession_area c ON c.area_id = s.area_id
	           WHERE s.stand_id = ?`
	var s model.Stand
	if err := r.q.QueryRowContext(ctx, r.d.Rebind(q), id).Scan(&s.ID, &s.AreaID, &s.Name, &s.AreaName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListDishes returns the dishes a stand serves.
func (r *FoodRepo) ListDishes(ctx context.Context, standID int64) ([]model.Dish, error) {
	const q = `SELECT dish_id, stand_id, dish_name, price, item_type
	           FROM dish WHERE stand_id = ? ORDER BY dish_id`
	rows, err := r.q.QueryContext(ctx, r.d.Rebind(q), standID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Dish
	for rows.Next() {
		var d model.Dish
		if err := rows.Scan(&d.ID, &d.StandID, &d.Name, &d.Price, &d.ItemType); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateArea inserts a concession area and populates its ID.
func (r *FoodRepo) CreateArea(ctx context.Context, a *model.ConcessionArea) error {
	id, err := insert(ctx, r.q, r.d,
		"INSERT INTO concession_area (stage_id, area_name, number_of_stands) VALUES (?, ?, ?)",
		"area_id", a.StageID, a.Name, a.NumberOfStands)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// CreateStand inserts a stand and populates its ID.
func (r *FoodRepo) CreateStand(ctx context.Context, s *model.Stand) error {
	id, err := insert(ctx, r.q, r.d,
		"INSERT INTO stand (area_id, stand_name) VALUES (?, ?)",
		"stand_id", s.AreaID, s.Name)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// CreateDish inserts a dish and populates its ID.
func (r *FoodRepo) CreateDish(ctx context.Context, d *model.Dish) error {
	id, err := insert(ctx, r.q, r.d,
		"INSERT INTO dish (stand_id, dish_name, price, item_type) VALUES (?, ?, ?, ?)",
		"dish_id", d.StandID, d.Name, d.Price, d.ItemType)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}
