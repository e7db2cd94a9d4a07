package menu

import (
	"time"

	"resto-be/internal/nullable"
	"resto-be/internal/validation"
)

type Category string

const (
	CategoryFood     Category = "food"
	CategoryDrinks   Category = "drinks"
	CategoryPackages Category = "packages"
)


// Categories lists every category in display order.
var Categories = []Category{CategoryFood, CategoryDrinks, CategoryPackages}

var categoryRule = validation.OneOf(Categories)

func (c Category) Validate() error {
	return validation.Var("input", string(c), categoryRule)
}

type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMenuItemInput struct {
	Name        string   `json:"name" validate:"min=1"`
	Description *string  `json:"description"`
	Category    Category `json:"category" validate:"oneof=food drinks packages"`
	Price       float64  `json:"price" validate:"money"`
	ImageURL    *string  `json:"image_url"`
}

// UpdateMenuItemInput changes only the fields present in the request.
type UpdateMenuItemInput struct {
	ID          int64                  `json:"id" validate:"required"`
	Name        *string                `json:"name" validate:"omitempty,min=1"`
	Description nullable.Field[string] `json:"description"`
	Category    *Category              `json:"category" validate:"omitempty,oneof=food drinks packages"`
	Price       *float64               `json:"price" validate:"omitempty,money"`
	ImageURL    nullable.Field[string] `json:"image_url"`
}

func (in UpdateMenuItemInput) HasChanges() bool {
	return in.Name != nil ||
		in.Description.Set ||
		in.Category != nil ||
		in.Price != nil ||
		in.ImageURL.Set
}
