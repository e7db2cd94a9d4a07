package order

import (
	"encoding/json"
	"fmt"
	"time"

	"resto-be/internal/money"
)

// orderRow mirrors an orders row. items is JSONB and total_amount NUMERIC, both read as text.
type orderRow struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Items         []byte
	TotalAmount   string
	Status        Status
	CreatedAt     time.Time
}

func (r *orderRow) dest() []any {
	return []any{&r.ID, &r.CustomerName, &r.CustomerPhone, &r.Items, &r.TotalAmount, &r.Status, &r.CreatedAt}
}

func mapRowToOrder(r *orderRow) (*Order, error) {
	items := []OrderItem{}
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidItems, err)
		}
	}

	total, err := money.FromText(r.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTotal, err)
	}

	return &Order{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Items:         items,
		TotalAmount:   total,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}, nil
}

func encodeItems(items []OrderItem) ([]byte, error) {
	if items == nil {
		items = []OrderItem{}
	}
	return json.Marshal(items)
}
