package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resto-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input CreateReservationInput) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	ListByStatus(ctx context.Context, status Status) ([]*Reservation, error)
	ListByDate(ctx context.Context, date Date) ([]*Reservation, error)
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	UpdateStatus(ctx context.Context, input UpdateReservationStatusInput) (*Reservation, error)
}

const reservationColumns = `id, customer_name, customer_phone, number_of_people, date, time, status, created_at`

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanReservation(sc interface{ Scan(...any) error }) (*Reservation, error) {
	var r Reservation
	err := sc.Scan(
		&r.ID,
		&r.CustomerName,
		&r.CustomerPhone,
		&r.NumberOfPeople,
		&r.Date,
		&r.Time,
		&r.Status,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *repository) Create(ctx context.Context, input CreateReservationInput) (*Reservation, error) {
	query := `
		INSERT INTO reservations (customer_name, customer_phone, number_of_people, date, time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reservationColumns

	res, err := scanReservation(r.db.QueryRowContext(ctx, query,
		input.CustomerName,
		input.CustomerPhone,
		input.NumberOfPeople,
		input.Date,
		input.Time,
		StatusPending,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("CreateReservation DB query failed",
			zap.String("date", input.Date),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create reservation failed: %w", err)
	}

	return res, nil
}

func (r *repository) List(ctx context.Context) ([]*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY date ASC, time ASC, id ASC`

	return r.query(ctx, "ListReservations", query)
}

func (r *repository) ListByStatus(ctx context.Context, status Status) ([]*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = $1 ORDER BY date ASC, time ASC, id ASC`

	return r.query(ctx, "ListReservationsByStatus", query, status)
}

func (r *repository) ListByDate(ctx context.Context, date Date) ([]*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE date = $1 ORDER BY time ASC, id ASC`

	return r.query(ctx, "ListReservationsByDate", query, string(date))
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("GetReservation DB query failed", zap.Int64("reservation_id", id), zap.Error(err))
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}

	return res, nil
}

func (r *repository) UpdateStatus(ctx context.Context, input UpdateReservationStatusInput) (*Reservation, error) {
	query := `UPDATE reservations SET status = $1 WHERE id = $2 RETURNING ` + reservationColumns

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, input.Status, input.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("UpdateReservationStatus DB query failed",
			zap.Int64("reservation_id", input.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("update reservation status failed: %w", err)
	}

	return res, nil
}

func (r *repository) query(ctx context.Context, op, query string, args ...interface{}) ([]*Reservation, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error(op+" DB query failed", zap.Error(err))
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	list := []*Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		list = append(list, res)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return list, nil
}
