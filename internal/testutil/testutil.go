package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iliyamo/festival-manager/internal/config"
	"github.com/iliyamo/festival-manager/internal/database"
)

// SetupTestDB opens a fresh SQLite database in a temp dir with the full
// schema.  The database is closed when the test ends.
func SetupTestDB(t *testing.T) (*sql.DB, database.Dialect) {
	t.Helper()

	db, d, err := database.Open(config.DBConfig{
		Driver: config.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "festival.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.CreateSchema(context.Background(), db, d); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db, d
}

func insertRow(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()

	var id int64
	if err := db.QueryRow(query, args...).Scan(&id); err != nil {
		t.Fatalf("Failed to insert fixture (%s): %v", query, err)
	}
	return id
}

// AddStage creates a stage and returns its ID.
func AddStage(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	return insertRow(t, db, `INSERT INTO stage (stage_name) VALUES (?) RETURNING stage_id`, name)
}

// AddArtist creates an artist playing stageID on day between start and end.
func AddArtist(t *testing.T, db *sql.DB, name string, stageID int64, day, start, end string) int64 {
	t.Helper()
	return insertRow(t, db, `
		INSERT INTO artist (artist_name, set_start_time, set_end_time, stage_id, set_day)
		VALUES (?, ?, ?, ?, ?) RETURNING artist_id
	`, name, start, end, stageID, day)
}

// AddSong adds a song to an artist's setlist.
func AddSong(t *testing.T, db *sql.DB, name string, artistID int64) int64 {
	t.Helper()
	return insertRow(t, db, `INSERT INTO song (song_name, artist_id) VALUES (?, ?) RETURNING song_id`, name, artistID)
}

// AddTent creates a merch tent next to stageID.
func AddTent(t *testing.T, db *sql.DB, stageID int64, workers int) int64 {
	t.Helper()
	return insertRow(t, db, `INSERT INTO merch_tent (stage_id, number_of_workers) VALUES (?, ?) RETURNING tent_id`, stageID, workers)
}

// AddArea creates a concession area serving stageID.
func AddArea(t *testing.T, db *sql.DB, stageID int64, name string, stands int) int64 {
	t.Helper()
	return insertRow(t, db, `
		INSERT INTO concession_area (stage_id, area_name, number_of_stands)
		VALUES (?, ?, ?) RETURNING area_id
	`, stageID, name, stands)
}

// AddStand creates a stand in areaID.
func AddStand(t *testing.T, db *sql.DB, areaID int64, name string) int64 {
	t.Helper()
	return insertRow(t, db, `INSERT INTO stand (area_id, stand_name) VALUES (?, ?) RETURNING stand_id`, areaID, name)
}

// AddDish adds a dish to standID.
func AddDish(t *testing.T, db *sql.DB, standID int64, name string, price float64, itemType string) int64 {
	t.Helper()
	return insertRow(t, db, `
		INSERT INTO dish (stand_id, dish_name, price, item_type)
		VALUES (?, ?, ?, ?) RETURNING dish_id
	`, standID, name, price, itemType)
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates an HTTP test request with a url-encoded form body.
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains every fragment.
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q. Body: %s", f, body)
		}
	}
}
