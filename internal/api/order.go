package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resto-be/internal/order"
	"resto-be/internal/rpc"
	"resto-be/internal/validation"
)

func (res *Resolver) registerOrders(r *rpc.Router) {
	svc := res.OrderSvc

	rpc.Mutation(r, "createOrder", func(ctx context.Context, in order.CreateOrderInput) (*order.Order, error) {
		o, err := svc.Create(ctx, in)
		if err != nil {
			return nil, orderError(err)
		}
		return o, nil
	})

	rpc.Query(r, "getOrders", func(ctx context.Context, _ rpc.Void) ([]*order.Order, error) {
		return svc.List(ctx)
	}, res.staff())

	rpc.Query(r, "getOrdersByStatus", svc.ListByStatus, res.staff())

	rpc.Query(r, "getOrderById", svc.GetByID)

	rpc.Mutation(r, "updateOrderStatus", svc.UpdateStatus, res.staff())
}

// orderError turns a referential failure into UNPROCESSABLE_CONTENT.
func orderError(err error) error {
	var unknown *order.UnknownMenuItemsError
	if !errors.As(err, &unknown) {
		return err
	}

	ids := make([]string, len(unknown.IDs))
	for i, id := range unknown.IDs {
		ids[i] = fmt.Sprint(id)
	}

	return &rpc.Error{
		Code:    rpc.CodeUnprocessable,
		Message: "order references menu items that do not exist",
		Issues: []validation.Issue{{
			Field:   "items",
			Message: "unknown menu item ids: " + strings.Join(ids, ", "),
		}},
		Cause: err,
	}
}
