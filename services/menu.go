package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"brewtalk/db"
	"brewtalk/models"
)

// seedCatalog is the menu inserted on first run, before staff add their own items.
var seedCatalog = []models.MenuItem{
	{Name: "Cappuccino", Price: 150.0, InStock: true, Image: "cappuccino.jpg"},
	{Name: "Latte", Price: 160.0, InStock: true, Image: "latte.jpg"},
	{Name: "Americano", Price: 140.0, InStock: true, Image: "americano.jpg"},
	{Name: "Mocha", Price: 180.0, InStock: true, Image: "mocha.jpg"},
	{Name: "Frappe", Price: 200.0, InStock: true, Image: "frappe.jpg"},
	{Name: "Cheesecake", Price: 250.0, InStock: true, Image: "cheesecake.jpg"},
	{Name: "Pastry", Price: 120.0, InStock: true, Image: "pastry.jpg"},
	{Name: "Brownie", Price: 100.0, InStock: true, Image: "brownie.jpg"},
	{Name: "Vegetable Sandwich", Price: 180.0, InStock: true, Image: "veg_sandwich.jpg"},
	{Name: "Grilled Cheese Sandwich", Price: 200.0, InStock: true, Image: "grilled_cheese.jpg"},
	{Name: "Croissant", Price: 80.0, InStock: true, Image: "croissant.jpg"},
	{Name: "Cookies", Price: 60.0, InStock: true, Image: "cookies.jpg"},
}

// InitializeStorage creates the tables if absent and seeds the menu on an
// empty database. Safe to call on every startup.
func InitializeStorage(ctx context.Context) error {
	if err := db.Migrate(ctx, false); err != nil {
		return err
	}

	var count int
	if err := db.Conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM initial_items`).Scan(&count); err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range seedCatalog {
		_, err := db.Conn.ExecContext(ctx, `
			INSERT INTO initial_items (name, price, in_stock, image) VALUES (?, ?, ?, ?)`,
			item.Name, item.Price, item.InStock, item.Image,
		)
		if err != nil {
			return fmt.Errorf("seed menu item %s: %w", item.Name, err)
		}
	}
	return nil
}

// ListMenuItems returns the whole menu, ordered by name.
func ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Conn.QueryContext(ctx, `
		SELECT id, name, price, in_stock, image FROM initial_items
		ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddMenuItem inserts a new menu item. Validation failures and duplicate
// names come back as ok=false with a user-facing message; only genuine
// storage faults are returned as an error. There is no uniqueness
// pre-check: the UNIQUE constraint on name is the single source of truth,
// which avoids a race between check and insert.
func AddMenuItem(ctx context.Context, name string, price float64, inStock bool) (bool, string, error) {
	if name == "" {
		return false, "Name is required.", nil
	}
	if price <= 0 {
		return false, "Price must be a positive number.", nil
	}

	_, err := db.Conn.ExecContext(ctx, `
		INSERT INTO initial_items (name, price, in_stock) VALUES (?, ?, ?)`,
		name, price, inStock,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return false, fmt.Sprintf("Item '%s' already exists!", name), nil
		}
		return false, "", fmt.Errorf("insert menu item: %w", err)
	}
	return true, fmt.Sprintf("Added %s to menu!", name), nil
}

func scanMenuItem(rows *sql.Rows) (models.MenuItem, error) {
	var item models.MenuItem
	var image sql.NullString
	if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.InStock, &image); err != nil {
		return models.MenuItem{}, err
	}
	item.Image = image.String
	return item, nil
}
