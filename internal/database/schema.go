package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/iliyamo/festival-manager/internal/config"
)

// DemoNames are the rows the demo test table is seeded with.
var DemoNames = []string{"grace hopper", "alan turing", "ada lovelace"}

// tables lists the schema in dependency order.  {{pk}} and {{money}} are
// replaced with the dialect's auto-increment key and decimal types.  Foreign
// keys are table constraints: InnoDB ignores column-level REFERENCES.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS test (
    id {{pk}},
    name VARCHAR(255)
)`,
	`CREATE TABLE IF NOT EXISTS stage (
    stage_id {{pk}},
    stage_name VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS artist (
    artist_id {{pk}},
    artist_name VARCHAR(255) NOT NULL,
    set_start_time VARCHAR(8) NOT NULL,
    set_end_time VARCHAR(8) NOT NULL,
    stage_id INT NOT NULL,
    set_day VARCHAR(16) NOT NULL,
    FOREIGN KEY (stage_id) REFERENCES stage(stage_id)
)`,
	`CREATE TABLE IF NOT EXISTS song (
    song_id {{pk}},
    song_name VARCHAR(255) NOT NULL,
    artist_id INT NOT NULL,
    FOREIGN KEY (artist_id) REFERENCES artist(artist_id)
)`,
	`CREATE TABLE IF NOT EXISTS ticket (
    ticket_id {{pk}},
    ticket_type VARCHAR(64) NOT NULL,
    purchaser_name VARCHAR(255) NOT NULL,
    purchaser_age INT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS merch_tent (
    tent_id {{pk}},
    stage_id INT NOT NULL,
    number_of_workers INT NOT NULL,
    FOREIGN KEY (stage_id) REFERENCES stage(stage_id)
)`,
	`CREATE TABLE IF NOT EXISTS merch_item (
    item_id {{pk}},
    tent_id INT NOT NULL,
    item_name VARCHAR(255) NOT NULL,
    item_type VARCHAR(64) NOT NULL,
    number_remaining INT NOT NULL,
    price {{money}} NOT NULL,
    FOREIGN KEY (tent_id) REFERENCES merch_tent(tent_id)
)`,
	`CREATE TABLE IF NOT EXISTS concession_area (
    area_id {{pk}},
    stage_id INT NOT NULL,
    area_name VARCHAR(255) NOT NULL,
    number_of_stands INT NOT NULL,
    FOREIGN KEY (stage_id) REFERENCES stage(stage_id)
)`,
	`CREATE TABLE IF NOT EXISTS stand (
    stand_id {{pk}},
    area_id INT NOT NULL,
    stand_name VARCHAR(255) NOT NULL,
    FOREIGN KEY (area_id) REFERENCES concession_area(area_id)
)`,
	`CREATE TABLE IF NOT EXISTS dish (
    dish_id {{pk}},
    stand_id INT NOT NULL,
    dish_name VARCHAR(255) NOT NULL,
    price {{money}} NOT NULL,
    item_type VARCHAR(64) NOT NULL,
    FOREIGN KEY (stand_id) REFERENCES stand(stand_id)
)`,
}

func (d Dialect) ddl(stmt string) string {
	pk, money := "SERIAL PRIMARY KEY", "NUMERIC(10,2)"
	switch d.Driver {
	case config.DriverMySQL:
		pk, money = "INT AUTO_INCREMENT PRIMARY KEY", "DECIMAL(10,2)"
	case config.DriverSQLite:
		pk, money = "INTEGER PRIMARY KEY AUTOINCREMENT", "REAL"
	}
	return strings.NewReplacer("{{pk}}", pk, "{{money}}", money).Replace(stmt)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.  Statements run one at a
// time because the MySQL driver rejects multi-statement strings.
func CreateSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range tables {
		if _, err := db.ExecContext(ctx, d.ddl(stmt)); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SeedDemo fills the demo test table with DemoNames when it is empty.
func SeedDemo(ctx context.Context, db *sql.DB, d Dialect) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM test").Scan(&n); err != nil {
		return fmt.Errorf("count demo rows: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, name := range DemoNames {
		if _, err := db.ExecContext(ctx, d.Rebind("INSERT INTO test (name) VALUES (?)"), name); err != nil {
			return fmt.Errorf("seed demo rows: %w", err)
		}
	}
	return nil
}
