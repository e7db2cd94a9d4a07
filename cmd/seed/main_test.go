package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"resto-be/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuService struct {
	mock.Mock
	menu.Service
}

func (m *MockMenuService) Create(ctx context.Context, input menu.CreateMenuItemInput) (*menu.MenuItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func TestSeed(t *testing.T) {
	inputs := []menu.CreateMenuItemInput{
		{Name: "Soup", Category: menu.CategoryFood, Price: 9.5},
		{Name: "Tea", Category: menu.CategoryDrinks, Price: 2},
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockMenuService)
		svc.On("Create", mock.Anything, inputs[0]).Return(&menu.MenuItem{ID: 1, Name: "Soup", Category: menu.CategoryFood, Price: 9.5}, nil)
		svc.On("Create", mock.Anything, inputs[1]).Return(&menu.MenuItem{ID: 2, Name: "Tea", Category: menu.CategoryDrinks, Price: 2}, nil)

		items, err := seed(context.Background(), svc, inputs)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[1].ID)
		svc.AssertExpectations(t)
	})

	t.Run("StopsOnFailure", func(t *testing.T) {
		svc := new(MockMenuService)
		svc.On("Create", mock.Anything, inputs[0]).Return(nil, errors.New("db down"))

		items, err := seed(context.Background(), svc, inputs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `seed "Soup"`)
		assert.Empty(t, items)
		svc.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestSampleMenuIsValid(t *testing.T) {
	seen := map[menu.Category]bool{}
	for _, in := range sampleMenu {
		assert.NotEmpty(t, in.Name)
		assert.Greater(t, in.Price, 0.0)
		assert.NoError(t, in.Category.Validate())
		seen[in.Category] = true
	}
	assert.Len(t, seen, len(menu.Categories))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	err := render(&buf, []*menu.MenuItem{
		{ID: 1, Name: "Soup", Category: menu.CategoryFood, Price: 9.5},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Soup")
	assert.Contains(t, out, "food")
	assert.Contains(t, out, "9.50")
}
