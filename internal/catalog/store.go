package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog_items (
    id              TEXT PRIMARY KEY,
    position        INTEGER NOT NULL,
    name            TEXT NOT NULL,
    description     TEXT,
    restaurant_id   TEXT NOT NULL,
    restaurant_name TEXT,
    price           INTEGER NOT NULL,
    rating          REAL CHECK(rating BETWEEN 0 AND 5),
    tags            TEXT,
    delivery_time   TEXT,
    distance_km     REAL,
    add_ons         TEXT,
    cached_at       TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS coupons (
    code        TEXT PRIMARY KEY,
    description TEXT,
    model       INTEGER NOT NULL,
    amount      INTEGER,
    rate        REAL,
    cap         INTEGER,
    min_order   INTEGER,
    active      INTEGER NOT NULL CHECK(active IN (0,1)),
    expires_at  TEXT NOT NULL,
    cached_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE INDEX IF NOT EXISTS idx_catalog_items_position ON catalog_items(position);
`

// Open opens or creates the local cache database and initializes the
// schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// SaveCatalog replaces the cached catalog with a fresh fetch. Catalog
// order is preserved through the position column.
func SaveCatalog(db *sql.DB, items []model.CatalogItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM catalog_items"); err != nil {
		return fmt.Errorf("failed to clear catalog cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO catalog_items
		(id, position, name, description, restaurant_id, restaurant_name, price, rating, tags, delivery_time, distance_km, add_ons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		tags, err := json.Marshal(item.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}
		addOns, err := json.Marshal(item.AddOns)
		if err != nil {
			return fmt.Errorf("failed to marshal add-ons: %w", err)
		}
		if _, err := stmt.Exec(
			item.ID, i, item.Name, item.Description,
			item.RestaurantID, item.RestaurantName,
			item.Price, item.Rating, string(tags),
			item.DeliveryTime, item.DistanceKM, string(addOns),
		); err != nil {
			return fmt.Errorf("failed to insert catalog item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// LoadCatalog returns the cached catalog in its original order.
func LoadCatalog(db *sql.DB) ([]model.CatalogItem, error) {
	rows, err := db.Query(`
		SELECT id, name, description, restaurant_id, restaurant_name, price, rating, tags, delivery_time, distance_km, add_ons
		FROM catalog_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog cache: %w", err)
	}
	defer rows.Close()

	var items []model.CatalogItem
	for rows.Next() {
		var item model.CatalogItem
		var tags, addOns string
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description,
			&item.RestaurantID, &item.RestaurantName,
			&item.Price, &item.Rating, &tags,
			&item.DeliveryTime, &item.DistanceKM, &addOns,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tags for %s: %w", item.ID, err)
			}
		}
		if addOns != "" {
			if err := json.Unmarshal([]byte(addOns), &item.AddOns); err != nil {
				return nil, fmt.Errorf("failed to unmarshal add-ons for %s: %w", item.ID, err)
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SaveCoupons replaces the cached coupon list.
func SaveCoupons(db *sql.DB, coupons []model.Coupon) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM coupons"); err != nil {
		return fmt.Errorf("failed to clear coupon cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO coupons (code, description, model, amount, rate, cap, min_order, active, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range coupons {
		active := 0
		if c.Active {
			active = 1
		}
		if _, err := stmt.Exec(
			c.Code, c.Description, int(c.Model), c.Amount, c.Rate,
			c.Cap, c.MinOrder, active, c.ExpiresAt.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to insert coupon %s: %w", c.Code, err)
		}
	}

	return tx.Commit()
}

// LoadCoupons returns the cached coupon list.
func LoadCoupons(db *sql.DB) ([]model.Coupon, error) {
	rows, err := db.Query(`
		SELECT code, description, model, amount, rate, cap, min_order, active, expires_at
		FROM coupons ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupon cache: %w", err)
	}
	defer rows.Close()

	var coupons []model.Coupon
	for rows.Next() {
		var c model.Coupon
		var modelInt, active int
		var expiresAt string
		if err := rows.Scan(
			&c.Code, &c.Description, &modelInt, &c.Amount, &c.Rate,
			&c.Cap, &c.MinOrder, &active, &expiresAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		c.Model = model.DiscountModel(modelInt)
		c.Active = active == 1
		t, err := time.Parse(time.RFC3339, expiresAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expiry for %s: %w", c.Code, err)
		}
		c.ExpiresAt = t
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}
