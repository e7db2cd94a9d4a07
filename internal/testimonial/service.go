package testimonial

import (
	"context"

	"resto-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateTestimonialInput) (*Testimonial, error)
	List(ctx context.Context) ([]*Testimonial, error)
	ListByMinRating(ctx context.Context, min Rating) ([]*Testimonial, error)
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
	Update(ctx context.Context, input UpdateTestimonialInput) (*Testimonial, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateTestimonialInput) (*Testimonial, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateTestimonial"),
		zap.Int("rating", input.Rating),
	)
	log.Info("CreateTestimonial started")

	t, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create testimonial", zap.Error(err))
		return nil, err
	}

	log.Info("CreateTestimonial success", zap.Int64("testimonial_id", t.ID))
	return t, nil
}

func (s *service) List(ctx context.Context) ([]*Testimonial, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list testimonials", zap.String("layer", "service"), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *service) ListByMinRating(ctx context.Context, min Rating) ([]*Testimonial, error) {
	list, err := s.repo.ListByMinRating(ctx, min)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list testimonials by rating",
			zap.String("layer", "service"),
			zap.Float64("min_rating", float64(min)),
			zap.Error(err),
		)
		return nil, err
	}
	return list, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get testimonial",
			zap.String("layer", "service"),
			zap.Int64("testimonial_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, input UpdateTestimonialInput) (*Testimonial, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateTestimonial"),
		zap.Int64("testimonial_id", input.ID),
	)
	log.Info("UpdateTestimonial started")

	if !input.HasChanges() {
		log.Info("no fields to update, returning current testimonial")
		return s.GetByID(ctx, input.ID)
	}

	t, err := s.repo.Update(ctx, input)
	if err != nil {
		log.Error("failed to update testimonial", zap.Error(err))
		return nil, err
	}
	if t == nil {
		log.Info("testimonial not found")
		return nil, nil
	}

	log.Info("UpdateTestimonial success")
	return t, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteTestimonial"),
		zap.Int64("testimonial_id", id),
	)
	log.Info("DeleteTestimonial started")

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete testimonial", zap.Error(err))
		return false, err
	}

	log.Info("DeleteTestimonial finished", zap.Bool("deleted", deleted))
	return deleted, nil
}

// Summary is computed from the stored rows on every call.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.repo.CountByRating(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to summarize testimonials", zap.String("layer", "service"), zap.Error(err))
		return nil, err
	}
	return buildSummary(counts), nil
}
