package order

import (
	"time"

	"resto-be/internal/validation"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

var statusRule = validation.OneOf(Statuses)

func (s Status) Validate() error {
	return validation.Var("input", string(s), statusRule)
}

type OrderItem struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity" validate:"gt=0"`
}

type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        Status      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// CreateOrderInput carries the client-computed total. It is stored as sent.
type CreateOrderInput struct {
	CustomerName  string      `json:"customer_name" validate:"min=1"`
	CustomerPhone string      `json:"customer_phone" validate:"min=1"`
	Items         []OrderItem `json:"items" validate:"min=1,dive"`
	TotalAmount   float64     `json:"total_amount" validate:"money"`
}

// MenuItemIDs returns the distinct referenced menu item ids in first-seen order.
func (in CreateOrderInput) MenuItemIDs() []int64 {
	seen := make(map[int64]struct{}, len(in.Items))
	ids := make([]int64, 0, len(in.Items))
	for _, it := range in.Items {
		if _, ok := seen[it.MenuItemID]; ok {
			continue
		}
		seen[it.MenuItemID] = struct{}{}
		ids = append(ids, it.MenuItemID)
	}
	return ids
}

type UpdateOrderStatusInput struct {
	ID     int64  `json:"id" validate:"required"`
	Status Status `json:"status" validate:"oneof=pending confirmed preparing ready completed cancelled"`
}
