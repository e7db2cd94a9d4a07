package api

import (
	"context"

	"resto-be/internal/menu"
	"resto-be/internal/rpc"
)

func (res *Resolver) registerMenu(r *rpc.Router) {
	svc := res.MenuSvc

	rpc.Mutation(r, "createMenuItem", svc.Create, res.staff())

	rpc.Query(r, "getMenuItems", func(ctx context.Context, _ rpc.Void) ([]*menu.MenuItem, error) {
		return svc.List(ctx)
	})

	rpc.Query(r, "getMenuItemsByCategory", svc.ListByCategory)

	rpc.Query(r, "getMenuItemById", svc.GetByID)

	rpc.Mutation(r, "updateMenuItem", svc.Update, res.staff())

	rpc.Mutation(r, "deleteMenuItem", svc.Delete, res.staff())
}
