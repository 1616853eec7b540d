package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"brewtalk/db"
	"brewtalk/models"
)

// CountPendingOrders returns how many orders still await fulfillment.
func CountPendingOrders(ctx context.Context) (int, error) {
	var count int
	err := db.Conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders WHERE status = ?`,
		models.OrderStatusPending,
	).Scan(&count)
	return count, err
}

// SubmitOrder turns a raw form submission into a persisted Pending order
// and returns its id and computed total. For every known menu item id, the key
// "item_<id>" marks it selected and "qty_<id>" carries the quantity
// (missing quantity means 1; unparseable or non-positive quantity drops
// the item without failing the order). When nothing usable was selected,
// SubmitOrder returns models.ErrNoSelection and writes nothing.
//
// Totals are always computed from current menu prices, never from
// anything the client sent. The menu read and the order insert are two
// separate auto-committed statements; a menu edit racing the submission
// can produce a total from the pre-edit prices.
func SubmitOrder(ctx context.Context, form map[string]string) (int64, float64, error) {
	menu, err := menuByID(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load menu: %w", err)
	}

	lines, total := selectionFromForm(form, menu)
	if len(lines) == 0 {
		return 0, 0, models.ErrNoSelection
	}

	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return 0, 0, fmt.Errorf("marshal order items: %w", err)
	}

	res, err := db.Conn.ExecContext(ctx, `
		INSERT INTO orders (items, total_price, status) VALUES (?, ?, ?)`,
		string(itemsJSON), total, models.OrderStatusPending,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, 0, fmt.Errorf("read order id: %w", err)
	}
	return orderID, total, nil
}

// ListPendingOrders fetches all orders still in Pending status, in
// storage order.
func ListPendingOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := db.Conn.QueryContext(ctx, `
		SELECT id, items, total_price, status FROM orders WHERE status = ?`,
		models.OrderStatusPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemsJSON string
		if err := rows.Scan(&o.ID, &itemsJSON, &o.TotalPrice, &o.Status); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(itemsJSON), &o.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal items of order %d: %w", o.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CompleteOrder moves an order to Completed. Completing an order that is
// already Completed succeeds and changes nothing; an id that matches no
// row returns models.ErrOrderNotFound.
func CompleteOrder(ctx context.Context, orderID int64) error {
	res, err := db.Conn.ExecContext(ctx, `
		UPDATE orders SET status = ? WHERE id = ?`,
		models.OrderStatusCompleted, orderID,
	)
	if err != nil {
		return fmt.Errorf("complete order %d: %w", orderID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

// selectionFromForm resolves the sparse item_<id>/qty_<id> form keys
// against the known menu and returns the surviving lines plus their
// total. Order of lines follows menu id order.
func selectionFromForm(form map[string]string, menu []models.MenuItem) ([]models.OrderLine, float64) {
	var lines []models.OrderLine
	var total float64

	for _, item := range menu {
		if _, selected := form[fmt.Sprintf("item_%d", item.ID)]; !selected {
			continue
		}
		qty := 1
		if raw, ok := form[fmt.Sprintf("qty_%d", item.ID)]; ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			qty = parsed
		}
		if qty <= 0 {
			continue
		}
		lines = append(lines, models.OrderLine{Name: item.Name, Qty: qty})
		total += item.Price * float64(qty)
	}
	return lines, total
}

func menuByID(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Conn.QueryContext(ctx, `
		SELECT id, name, price, in_stock, image FROM initial_items
		ORDER BY id`,
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
