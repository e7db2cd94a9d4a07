package api

import (
	"context"

	"resto-be/internal/reservation"
	"resto-be/internal/rpc"
)

func (res *Resolver) registerReservations(r *rpc.Router) {
	svc := res.ReservationSvc

	rpc.Mutation(r, "createReservation", svc.Create)

	rpc.Query(r, "getReservations", func(ctx context.Context, _ rpc.Void) ([]*reservation.Reservation, error) {
		return svc.List(ctx)
	}, res.staff())

	rpc.Query(r, "getReservationsByStatus", svc.ListByStatus, res.staff())

	rpc.Query(r, "getReservationsByDate", svc.ListByDate, res.staff())

	rpc.Query(r, "getReservationById", svc.GetByID)

	rpc.Mutation(r, "updateReservationStatus", svc.UpdateStatus, res.staff())
}
