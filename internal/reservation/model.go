package reservation

import (
	"time"

	"resto-be/internal/validation"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled}

var statusRule = validation.OneOf(Statuses)

func (s Status) Validate() error {
	return validation.Var("input", string(s), statusRule)
}

// Date is the reservation day as the client sent it. Lookups match it exactly.
type Date string

// Reservation keeps date and time as free text.
type Reservation struct {
	ID             int64     `json:"id"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	NumberOfPeople int       `json:"number_of_people"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateReservationInput struct {
	CustomerName   string `json:"customer_name" validate:"min=1"`
	CustomerPhone  string `json:"customer_phone" validate:"min=1"`
	NumberOfPeople int    `json:"number_of_people" validate:"gt=0"`
	Date           string `json:"date" validate:"min=1"`
	Time           string `json:"time" validate:"min=1"`
}

type UpdateReservationStatusInput struct {
	ID     int64  `json:"id" validate:"required"`
	Status Status `json:"status" validate:"oneof=pending confirmed cancelled"`
}
