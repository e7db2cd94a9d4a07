// Package api binds every domain service operation to a named procedure.
package api

import (
	"context"
	"time"

	"resto-be/internal/auth"
	"resto-be/internal/menu"
	"resto-be/internal/order"
	"resto-be/internal/reservation"
	"resto-be/internal/rpc"
	"resto-be/internal/testimonial"
	"resto-be/internal/utils"
)

type Resolver struct {
	MenuSvc        menu.Service
	OrderSvc       order.Service
	ReservationSvc reservation.Service
	TestimonialSvc testimonial.Service

	// StaffAuth gates back-office procedures behind a staff token.
	StaffAuth bool
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Register adds every procedure to r.
func (res *Resolver) Register(r *rpc.Router) {
	rpc.Query(r, "healthcheck", func(ctx context.Context, _ rpc.Void) (Health, error) {
		return Health{Status: "ok", Timestamp: time.Now().UTC().Format(time.RFC3339Nano)}, nil
	})

	res.registerMenu(r)
	res.registerOrders(r)
	res.registerReservations(r)
	res.registerTestimonials(r)
}

// staff returns the guard option for back-office procedures.
func (res *Resolver) staff() rpc.ProcedureOption {
	if !res.StaffAuth {
		return rpc.WithGuard(nil)
	}
	return rpc.WithGuard(requireStaff)
}

func requireStaff(ctx context.Context) error {
	if utils.IsInternalRequest(ctx) {
		return nil
	}
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return rpc.Errorf(rpc.CodeUnauthorized, "staff token required")
	}
	if !auth.IsStaff(utils.GetUserRoleFromContext(ctx)) {
		return rpc.Errorf(rpc.CodeForbidden, "staff role required")
	}
	return nil
}
