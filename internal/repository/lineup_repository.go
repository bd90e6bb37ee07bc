package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/festival-manager/internal/database"
	"github.com/iliyamo/festival-manager/internal/model"
)

// StageRepo reads the stage table.
type StageRepo struct {
	q Querier
	d database.Dialect
}

// List returns all stages ordered by id.
func (r *StageRepo) List(ctx context.Context) ([]model.Stage, error) {
	rows, err := r.q.QueryContext(ctx, "SELECT stage_id, stage_name FROM stage ORDER BY stage_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Stage
	for rows.Next() {
		var s model.Stage
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ArtistRepo reads the artist table.
type ArtistRepo struct {
	q Querier
	d database.Dialect
}

// ListBySetStart returns every artist ordered by set start time.
func (r *ArtistRepo) ListBySetStart(ctx context.Context) ([]model.Artist, error) {
	const q = `SELECT artist_id, artist_name, set_start_time, set_end_time, stage_id, set_day
	           FROM artist ORDER BY set_start_time, artist_id`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Artist
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.SetStart, &a.SetEnd, &a.StageID, &a.SetDay); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one artist with the name of the stage they play.  It returns
// ErrNotFound if no row matches.
func (r *ArtistRepo) Get(ctx context.Context, id int64) (*model.ArtistView, error) {
	const q = `SELECT a.artist_id, a.artist_name, a.set_start_time, a.set_end_time, a.stage_id, a.set_day, s.stage_name
	           FROM artist a JOIN stage s ON s.stage_id = a.stage_id
	           WHERE a.artist_id = ?`
	var v model.ArtistView
	a := &v.Artist
	err := r.q.QueryRowContext(ctx, r.d.Rebind(q), id).
		Scan(&a.ID, &a.Name, &a.SetStart, &a.SetEnd, &a.StageID, &a.SetDay, &v.StageName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// SongRepo reads the song table.
type SongRepo struct {
	q Querier
	d database.Dialect
}

// List returns every song.
func (r *SongRepo) List(ctx context.Context) ([]model.Song, error) {
	return r.list(ctx, "SELECT song_id, song_name, artist_id FROM song ORDER BY song_id")
}

// ListByArtist returns one artist's songs.
func (r *SongRepo) ListByArtist(ctx context.Context, artistID int64) ([]model.Song, error) {
	return r.list(ctx, "SELECT song_id, song_name, artist_id FROM song WHERE artist_id = ? ORDER BY song_id", artistID)
}

func (r *SongRepo) list(ctx context.Context, q string, args ...any) ([]model.Song, error) {
	rows, err := r.q.QueryContext(ctx, r.d.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Song
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Name, &s.ArtistID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
