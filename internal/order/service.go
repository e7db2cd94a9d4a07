package order

import (
	"context"
	"errors"
	"strconv"

	"resto-be/internal/events"
	"resto-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByStatus(ctx context.Context, status Status) ([]*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*Order, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
}

// NewService builds the order service. A nil publisher disables events.
func NewService(repo Repository, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(input.Items)),
	)
	log.Info("CreateOrder started")

	o, err := s.repo.Create(ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnknownMenuItems) {
			log.Warn("order rejected", zap.Error(err))
		} else {
			log.Error("failed to create order", zap.Error(err))
		}
		return nil, err
	}

	events.Emit(ctx, s.publisher, orderKey(o.ID), events.New(events.OrderCreated, o))

	log.Info("CreateOrder success", zap.Int64("order_id", o.ID))
	return o, nil
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}
	return orders, nil
}

func (s *service) ListByStatus(ctx context.Context, status Status) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListOrdersByStatus"),
		zap.String("status", string(status)),
	)

	orders, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		log.Error("failed to list orders by status", zap.Error(err))
		return nil, err
	}

	log.Debug("ListOrdersByStatus success", zap.Int("count", len(orders)))
	return orders, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get order",
			zap.String("layer", "service"),
			zap.Int64("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.Int64("order_id", input.ID),
		zap.String("status", string(input.Status)),
	)
	log.Info("UpdateOrderStatus started")

	o, err := s.repo.UpdateStatus(ctx, input)
	if err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	if o == nil {
		log.Info("order not found")
		return nil, nil
	}

	events.Emit(ctx, s.publisher, orderKey(o.ID), events.New(events.OrderStatusChanged, o))

	log.Info("UpdateOrderStatus success")
	return o, nil
}

func orderKey(id int64) string {
	return "order-" + strconv.FormatInt(id, 10)
}
