package testimonial

import (
	"bytes"
	"encoding/json"
	"time"

	"resto-be/internal/validation"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the lower bound for rating lookups. Fractional bounds such as 3.5 are allowed.
type Rating float64

func (r Rating) Validate() error {
	return validation.Var("input", float64(r), "min=1,max=5")
}

// Date accepts an RFC 3339 timestamp or a plain YYYY-MM-DD day (midnight UTC).
type Date struct {
	time.Time
}

const (
	dayLayout   = "2006-01-02"
	dateMessage = "must be an RFC 3339 timestamp or YYYY-MM-DD"
)

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return validation.New("date", dateMessage)
	}

	for _, layout := range []string{time.RFC3339Nano, dayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return validation.New("date", dateMessage)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

type Testimonial struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Review       string    `json:"review"`
	Rating       int       `json:"rating"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateTestimonialInput struct {
	CustomerName string `json:"customer_name" validate:"min=1"`
	Review       string `json:"review" validate:"min=1"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Date         *Date  `json:"date"`
}

type UpdateTestimonialInput struct {
	ID           int64   `json:"id" validate:"required"`
	CustomerName *string `json:"customer_name" validate:"omitempty,min=1"`
	Review       *string `json:"review" validate:"omitempty,min=1"`
	Rating       *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Date         *Date   `json:"date"`
}

func (in UpdateTestimonialInput) HasChanges() bool {
	return in.CustomerName != nil ||
		in.Review != nil ||
		in.Rating != nil ||
		in.Date != nil
}

// Summary aggregates every stored rating. Histogram has a key for each rating 1..5.
type Summary struct {
	Count     int         `json:"count"`
	Average   float64     `json:"average"`
	Histogram map[int]int `json:"histogram"`
}
