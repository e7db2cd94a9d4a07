package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type sample struct {
	Name     string   `json:"name" validate:"min=1"`
	Kind     string   `json:"kind" validate:"oneof=food drinks packages"`
	Price    float64  `json:"price" validate:"money"`
	Patch    *string  `json:"patch" validate:"omitempty,min=1"`
	Discount *float64 `json:"discount" validate:"omitempty,money"`
	Lines    []line   `json:"lines" validate:"min=1,dive"`
}

type selfChecked struct{ ok bool }

func (s selfChecked) Validate() error {
	if s.ok {
		return nil
	}
	return New("self", "rejected")
}

func valid() sample {
	return sample{Name: "Soup", Kind: "food", Price: 9.5, Lines: []line{{Quantity: 1}}}
}

func issuesOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)

	out := map[string]string{}
	for _, is := range verr.Issues {
		out[is.Field] = is.Message
	}
	return out
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Struct(valid()))
	})

	t.Run("Field errors use json names", func(t *testing.T) {
		s := valid()
		s.Name = ""
		s.Kind = "dessert"
		s.Price = 0

		issues := issuesOf(t, Struct(s))
		assert.Equal(t, "must not be empty", issues["name"])
		assert.Equal(t, "must be one of: food, drinks, packages", issues["kind"])
		assert.Contains(t, issues["price"], "positive amount")
	})

	t.Run("Nested slice path", func(t *testing.T) {
		s := valid()
		s.Lines = []line{{Quantity: 1}, {Quantity: 0}}

		issues := issuesOf(t, Struct(s))
		assert.Equal(t, "must be greater than 0", issues["lines[1].quantity"])
	})

	t.Run("Empty slice", func(t *testing.T) {
		s := valid()
		s.Lines = nil

		issues := issuesOf(t, Struct(s))
		assert.Contains(t, issues["lines"], "at least 1")
	})

	t.Run("Optional pointers", func(t *testing.T) {
		s := valid()
		empty := ""
		zero := 0.0
		s.Patch = &empty
		s.Discount = &zero

		issues := issuesOf(t, Struct(s))
		assert.Contains(t, issues, "patch")
		assert.Contains(t, issues, "discount")
	})

	t.Run("Money rounding to zero", func(t *testing.T) {
		s := valid()
		s.Price = 0.001

		assert.Contains(t, issuesOf(t, Struct(s)), "price")
	})
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("input", "drinks", "oneof=food drinks packages"))

	issues := issuesOf(t, Var("input", 7, "min=1,max=5"))
	assert.Equal(t, "must be at most 5", issues["input"])
}

func TestOneOf(t *testing.T) {
	type tier string
	assert.Equal(t, "oneof=gold silver", OneOf([]tier{"gold", "silver"}))
	assert.NoError(t, Var("input", "silver", OneOf([]tier{"gold", "silver"})))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(int64(3)))
	assert.NoError(t, Check(valid()))
	assert.NoError(t, Check((*sample)(nil)))
	assert.NoError(t, Check(selfChecked{ok: true}))

	bad := valid()
	bad.Name = ""
	assert.Contains(t, issuesOf(t, Check(&bad)), "name")
	assert.Contains(t, issuesOf(t, Check(selfChecked{})), "self")
}

func TestError_Error(t *testing.T) {
	err := &Error{Issues: []Issue{{Field: "name", Message: "is required"}, {Message: "bad"}}}
	assert.Equal(t, "validation failed: name: is required; bad", err.Error())
}
