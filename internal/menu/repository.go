package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"resto-be/internal/logger"
	"resto-be/internal/money"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input CreateMenuItemInput) (*MenuItem, error)
	List(ctx context.Context) ([]*MenuItem, error)
	ListByCategory(ctx context.Context, category Category) ([]*MenuItem, error)
	GetByID(ctx context.Context, id int64) (*MenuItem, error)
	Update(ctx context.Context, input UpdateMenuItemInput) (*MenuItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

const menuColumns = `id, name, description, category, price, image_url, created_at`

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, input CreateMenuItemInput) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("name", input.Name),
		zap.String("category", string(input.Category)),
	)

	query := `
		INSERT INTO menu_items (name, description, category, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + menuColumns

	var row menuItemRow
	err := r.db.QueryRowContext(ctx, query,
		input.Name,
		input.Description,
		input.Category,
		money.ToText(input.Price),
		input.ImageURL,
	).Scan(row.dest()...)
	if err != nil {
		log.Error("CreateMenuItem DB query failed", zap.Error(err))
		return nil, fmt.Errorf("create menu item failed: %w", err)
	}

	return mapRowToMenuItem(&row)
}

func (r *repository) List(ctx context.Context) ([]*MenuItem, error) {
	// category is an enum, so ORDER BY follows its declaration order.
	query := `SELECT ` + menuColumns + ` FROM menu_items ORDER BY category ASC, name ASC, id ASC`

	return r.query(ctx, "ListMenuItems", query)
}

func (r *repository) ListByCategory(ctx context.Context, category Category) ([]*MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE category = $1 ORDER BY name ASC, id ASC`

	return r.query(ctx, "ListMenuItemsByCategory", query, category)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`

	var row menuItemRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("GetMenuItem DB query failed", zap.Int64("menu_item_id", id), zap.Error(err))
		return nil, fmt.Errorf("get menu item failed: %w", err)
	}

	return mapRowToMenuItem(&row)
}

// Update writes only the fields set on input. Callers handle the no-change case.
func (r *repository) Update(ctx context.Context, input UpdateMenuItemInput) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("menu_item_id", input.ID))

	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Description.Set {
		add("description", input.Description.Value)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}
	if input.Price != nil {
		add("price", money.ToText(*input.Price))
	}
	if input.ImageURL.Set {
		add("image_url", input.ImageURL.Value)
	}

	if len(set) == 0 {
		return nil, errors.New("update menu item: no fields to update")
	}

	args = append(args, input.ID)
	query := fmt.Sprintf(
		`UPDATE menu_items SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), menuColumns,
	)

	log.Debug("Executing UpdateMenuItem query", zap.String("query", query))

	var row menuItemRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("UpdateMenuItem DB query failed", zap.Error(err))
		return nil, fmt.Errorf("update menu item failed: %w", err)
	}

	return mapRowToMenuItem(&row)
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("DeleteMenuItem DB query failed", zap.Int64("menu_item_id", id), zap.Error(err))
		return false, fmt.Errorf("delete menu item failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete menu item failed: %w", err)
	}

	return n > 0, nil
}

func (r *repository) query(ctx context.Context, op, query string, args ...interface{}) ([]*MenuItem, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error(op+" DB query failed", zap.Error(err))
		return nil, fmt.Errorf("list menu items failed: %w", err)
	}
	defer rows.Close()

	items := []*MenuItem{}
	for rows.Next() {
		var row menuItemRow
		if err := rows.Scan(row.dest()...); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan menu item failed: %w", err)
		}

		item, err := mapRowToMenuItem(&row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return items, nil
}
