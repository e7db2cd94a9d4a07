package testimonial

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"resto-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input CreateTestimonialInput) (*Testimonial, error)
	List(ctx context.Context) ([]*Testimonial, error)
	ListByMinRating(ctx context.Context, min Rating) ([]*Testimonial, error)
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
	Update(ctx context.Context, input UpdateTestimonialInput) (*Testimonial, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByRating(ctx context.Context) (map[int]int, error)
}

const testimonialColumns = `id, customer_name, review, rating, date, created_at`

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, input CreateTestimonialInput) (*Testimonial, error) {
	query := `
		INSERT INTO testimonials (customer_name, review, rating, date)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, NOW()))
		RETURNING ` + testimonialColumns

	t, err := scanTestimonial(r.db.QueryRowContext(ctx, query,
		input.CustomerName,
		input.Review,
		input.Rating,
		dateArg(input.Date),
	))
	if err != nil {
		logger.FromCtx(ctx).Error("CreateTestimonial DB query failed", zap.Int("rating", input.Rating), zap.Error(err))
		return nil, fmt.Errorf("create testimonial failed: %w", err)
	}

	return t, nil
}

func (r *repository) List(ctx context.Context) ([]*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY date DESC, id DESC`

	return r.query(ctx, "ListTestimonials", query)
}

func (r *repository) ListByMinRating(ctx context.Context, min Rating) ([]*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE rating >= $1 ORDER BY date DESC, id DESC`

	return r.query(ctx, "ListTestimonialsByMinRating", query, float64(min))
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	t, err := scanTestimonial(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("GetTestimonial DB query failed", zap.Int64("testimonial_id", id), zap.Error(err))
		return nil, fmt.Errorf("get testimonial failed: %w", err)
	}

	return t, nil
}

func (r *repository) Update(ctx context.Context, input UpdateTestimonialInput) (*Testimonial, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("testimonial_id", input.ID))

	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.CustomerName != nil {
		add("customer_name", *input.CustomerName)
	}
	if input.Review != nil {
		add("review", *input.Review)
	}
	if input.Rating != nil {
		add("rating", *input.Rating)
	}
	if input.Date != nil {
		add("date", dateArg(input.Date))
	}

	if len(set) == 0 {
		return nil, errors.New("update testimonial: no fields to update")
	}

	args = append(args, input.ID)
	query := fmt.Sprintf(
		`UPDATE testimonials SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), testimonialColumns,
	)

	t, err := scanTestimonial(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("UpdateTestimonial DB query failed", zap.Error(err))
		return nil, fmt.Errorf("update testimonial failed: %w", err)
	}

	return t, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("DeleteTestimonial DB query failed", zap.Int64("testimonial_id", id), zap.Error(err))
		return false, fmt.Errorf("delete testimonial failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete testimonial failed: %w", err)
	}

	return n > 0, nil
}

// CountByRating returns how many testimonials carry each rating. Ratings with none are absent.
func (r *repository) CountByRating(ctx context.Context) (map[int]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT rating, COUNT(*) FROM testimonials GROUP BY rating`)
	if err != nil {
		logger.FromCtx(ctx).Error("CountByRating DB query failed", zap.Error(err))
		return nil, fmt.Errorf("count testimonials failed: %w", err)
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var rating, n int
		if err := rows.Scan(&rating, &n); err != nil {
			return nil, fmt.Errorf("scan rating count failed: %w", err)
		}
		counts[rating] = n
	}

	return counts, rows.Err()
}

func (r *repository) query(ctx context.Context, op, query string, args ...interface{}) ([]*Testimonial, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error(op+" DB query failed", zap.Error(err))
		return nil, fmt.Errorf("list testimonials failed: %w", err)
	}
	defer rows.Close()

	list := []*Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan testimonial failed: %w", err)
		}
		list = append(list, t)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return list, nil
}
