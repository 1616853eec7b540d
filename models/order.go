package models

import "errors"

const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
)

// OrderLine is one selected menu item inside an order. The JSON tags
// define the persisted format of the orders.items column.
type OrderLine struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Order is a row from the orders table.
type Order struct {
	ID         int64
	Lines      []OrderLine
	TotalPrice float64
	Status     string
}

var (
	// ErrNoSelection means the submitted form contained no usable items.
	ErrNoSelection = errors.New("no items selected")

	// ErrOrderNotFound means the order id matched no row.
	ErrOrderNotFound = errors.New("order not found")
)
