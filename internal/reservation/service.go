package reservation

import (
	"context"
	"strconv"

	"resto-be/internal/events"
	"resto-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateReservationInput) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	ListByStatus(ctx context.Context, status Status) ([]*Reservation, error)
	ListByDate(ctx context.Context, date Date) ([]*Reservation, error)
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	UpdateStatus(ctx context.Context, input UpdateReservationStatusInput) (*Reservation, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &service{repo: repo, publisher: publisher}
}

// Create books a table. Overlapping bookings are accepted.
func (s *service) Create(ctx context.Context, input CreateReservationInput) (*Reservation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateReservation"),
		zap.String("date", input.Date),
		zap.Int("number_of_people", input.NumberOfPeople),
	)
	log.Info("CreateReservation started")

	res, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create reservation", zap.Error(err))
		return nil, err
	}

	events.Emit(ctx, s.publisher, reservationKey(res.ID), events.New(events.ReservationCreated, res))

	log.Info("CreateReservation success", zap.Int64("reservation_id", res.ID))
	return res, nil
}

func (s *service) List(ctx context.Context) ([]*Reservation, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list reservations", zap.String("layer", "service"), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *service) ListByStatus(ctx context.Context, status Status) ([]*Reservation, error) {
	list, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list reservations by status",
			zap.String("layer", "service"),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, err
	}
	return list, nil
}

func (s *service) ListByDate(ctx context.Context, date Date) ([]*Reservation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListReservationsByDate"),
		zap.String("date", string(date)),
	)

	list, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		log.Error("failed to list reservations by date", zap.Error(err))
		return nil, err
	}

	log.Debug("ListReservationsByDate success", zap.Int("count", len(list)))
	return list, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get reservation",
			zap.String("layer", "service"),
			zap.Int64("reservation_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return res, nil
}

func (s *service) UpdateStatus(ctx context.Context, input UpdateReservationStatusInput) (*Reservation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateReservationStatus"),
		zap.Int64("reservation_id", input.ID),
		zap.String("status", string(input.Status)),
	)
	log.Info("UpdateReservationStatus started")

	res, err := s.repo.UpdateStatus(ctx, input)
	if err != nil {
		log.Error("failed to update reservation status", zap.Error(err))
		return nil, err
	}
	if res == nil {
		log.Info("reservation not found")
		return nil, nil
	}

	events.Emit(ctx, s.publisher, reservationKey(res.ID), events.New(events.ReservationStatusChanged, res))

	log.Info("UpdateReservationStatus success")
	return res, nil
}

func reservationKey(id int64) string {
	return "reservation-" + strconv.FormatInt(id, 10)
}
