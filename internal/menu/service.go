package menu

import (
	"context"

	"resto-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the catalog operations.
type Service interface {
	Create(ctx context.Context, input CreateMenuItemInput) (*MenuItem, error)
	List(ctx context.Context) ([]*MenuItem, error)
	ListByCategory(ctx context.Context, category Category) ([]*MenuItem, error)
	GetByID(ctx context.Context, id int64) (*MenuItem, error)
	Update(ctx context.Context, input UpdateMenuItemInput) (*MenuItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateMenuItemInput) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateMenuItem"),
		zap.String("name", input.Name),
	)
	log.Info("CreateMenuItem started")

	item, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create menu item", zap.Error(err))
		return nil, err
	}

	log.Info("CreateMenuItem success", zap.Int64("menu_item_id", item.ID))
	return item, nil
}

func (s *service) List(ctx context.Context) ([]*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListMenuItems"),
	)

	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list menu items", zap.Error(err))
		return nil, err
	}

	log.Debug("ListMenuItems success", zap.Int("count", len(items)))
	return items, nil
}

func (s *service) ListByCategory(ctx context.Context, category Category) ([]*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListMenuItemsByCategory"),
		zap.String("category", string(category)),
	)

	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		log.Error("failed to list menu items by category", zap.Error(err))
		return nil, err
	}

	log.Debug("ListMenuItemsByCategory success", zap.Int("count", len(items)))
	return items, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*MenuItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get menu item",
			zap.String("layer", "service"),
			zap.Int64("menu_item_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return item, nil
}

func (s *service) Update(ctx context.Context, input UpdateMenuItemInput) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateMenuItem"),
		zap.Int64("menu_item_id", input.ID),
	)
	log.Info("UpdateMenuItem started")

	if !input.HasChanges() {
		log.Info("no fields to update, returning current item")
		return s.GetByID(ctx, input.ID)
	}

	item, err := s.repo.Update(ctx, input)
	if err != nil {
		log.Error("failed to update menu item", zap.Error(err))
		return nil, err
	}

	if item == nil {
		log.Info("menu item not found")
		return nil, nil
	}

	log.Info("UpdateMenuItem success")
	return item, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteMenuItem"),
		zap.Int64("menu_item_id", id),
	)
	log.Info("DeleteMenuItem started")

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete menu item", zap.Error(err))
		return false, err
	}

	log.Info("DeleteMenuItem finished", zap.Bool("deleted", deleted))
	return deleted, nil
}
