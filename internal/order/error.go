package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMenuItems = errors.New("order references unknown menu items")
	ErrInvalidItems     = errors.New("order items could not be decoded")
	ErrInvalidTotal     = errors.New("order total could not be decoded")
)

// UnknownMenuItemsError lists the referenced ids with no matching menu row.
type UnknownMenuItemsError struct {
	IDs []int64
}

func (e *UnknownMenuItemsError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s: %s", ErrUnknownMenuItems, strings.Join(parts, ", "))
}

func (e *UnknownMenuItemsError) Is(target error) bool {
	return target == ErrUnknownMenuItems
}
