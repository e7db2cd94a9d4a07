package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resto-be/internal/logger"
	"resto-be/internal/money"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByStatus(ctx context.Context, status Status) ([]*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*Order, error)
}

const orderColumns = `id, customer_name, customer_phone, items, total_amount, status, created_at`

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create checks that every referenced menu item exists and inserts the order
// in the same transaction. The menu rows stay share-locked until commit so a
// concurrent delete cannot slip in between the check and the insert.
func (r *repository) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("customer_name", input.CustomerName),
		zap.Int("item_count", len(input.Items)),
	)

	items, err := encodeItems(input.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("begin create order: %w", err)
	}
	defer tx.Rollback()

	missing, err := missingMenuItems(ctx, tx, input.MenuItemIDs())
	if err != nil {
		log.Error("menu item lookup failed", zap.Error(err))
		return nil, err
	}
	if len(missing) > 0 {
		log.Info("order references unknown menu items", zap.Int64s("menu_item_ids", missing))
		return nil, &UnknownMenuItemsError{IDs: missing}
	}

	query := `
		INSERT INTO orders (customer_name, customer_phone, items, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderColumns

	var row orderRow
	err = tx.QueryRowContext(ctx, query,
		input.CustomerName,
		input.CustomerPhone,
		string(items),
		money.ToText(input.TotalAmount),
		StatusPending,
	).Scan(row.dest()...)
	if err != nil {
		log.Error("CreateOrder DB query failed", zap.Error(err))
		return nil, fmt.Errorf("create order failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return nil, fmt.Errorf("commit create order: %w", err)
	}

	return mapRowToOrder(&row)
}

func missingMenuItems(ctx context.Context, tx *sql.Tx, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM menu_items WHERE id = ANY($1) FOR SHARE`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("lookup menu items: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan menu item id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup menu items: %w", err)
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *repository) List(ctx context.Context) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`

	return r.query(ctx, "ListOrders", query)
}

func (r *repository) ListByStatus(ctx context.Context, status Status) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at DESC, id DESC`

	return r.query(ctx, "ListOrdersByStatus", query, status)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var row orderRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("GetOrder DB query failed", zap.Int64("order_id", id), zap.Error(err))
		return nil, fmt.Errorf("get order failed: %w", err)
	}

	return mapRowToOrder(&row)
}

func (r *repository) UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*Order, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 RETURNING ` + orderColumns

	var row orderRow
	err := r.db.QueryRowContext(ctx, query, input.Status, input.ID).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("UpdateOrderStatus DB query failed",
			zap.Int64("order_id", input.ID),
			zap.String("status", string(input.Status)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("update order status failed: %w", err)
	}

	return mapRowToOrder(&row)
}

func (r *repository) query(ctx context.Context, op, query string, args ...interface{}) ([]*Order, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error(op+" DB query failed", zap.Error(err))
		return nil, fmt.Errorf("list orders failed: %w", err)
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(row.dest()...); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan order failed: %w", err)
		}

		o, err := mapRowToOrder(&row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return orders, nil
}
