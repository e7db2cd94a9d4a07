package menu

import (
	"database/sql"
	"fmt"
	"time"

	"resto-be/internal/money"
)

// menuItemRow mirrors a menu_items row as the driver returns it.
type menuItemRow struct {
	ID          int64
	Name        string
	Description sql.NullString
	Category    Category
	Price       string
	ImageURL    sql.NullString
	CreatedAt   time.Time
}

func (r *menuItemRow) dest() []any {
	return []any{&r.ID, &r.Name, &r.Description, &r.Category, &r.Price, &r.ImageURL, &r.CreatedAt}
}

func mapRowToMenuItem(r *menuItemRow) (*MenuItem, error) {
	price, err := money.FromText(r.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	return &MenuItem{
		ID:          r.ID,
		Name:        r.Name,
		Description: nullString(r.Description),
		Category:    r.Category,
		Price:       price,
		ImageURL:    nullString(r.ImageURL),
		CreatedAt:   r.CreatedAt,
	}, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
