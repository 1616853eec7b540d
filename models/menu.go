package models

// MenuItem is a row from the initial_items table.
// Image is empty when the column is NULL.
type MenuItem struct {
	ID      int64
	Name    string
	Price   float64
	InStock bool
	Image   string
}
