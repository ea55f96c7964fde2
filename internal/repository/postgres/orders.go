package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/internal/repository"
	"github.com/luxdrop/storefront/pkg/apperrors"
)

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// Items and shipping address are denormalized JSONB documents: an order is an
// immutable snapshot, never joined back to the catalog.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("marshal shipping address: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO orders (id, user_email, user_name, items, total, status,
			payment_method, shipping_address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID, order.UserEmail, order.UserName, itemsJSON, order.Total,
		order.Status, order.PaymentMethod, addressJSON,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON, addressJSON []byte
	err := row.Scan(
		&o.ID, &o.UserEmail, &o.UserName, &itemsJSON, &o.Total, &o.Status,
		&o.PaymentMethod, &addressJSON, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("unmarshal shipping address: %w", err)
	}
	return &o, nil
}

const orderColumns = `id, user_email, user_name, items, total, status,
	payment_method, shipping_address, created_at, updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, userEmail string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []interface{}
	if userEmail != "" {
		query += ` WHERE user_email = $1`
		args = append(args, userEmail)
	}
	query += ` ORDER BY created_at DESC LIMIT 100`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *orderRepository) Stats(ctx context.Context) (*repository.OrderStats, error) {
	var stats repository.OrderStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = $1),
		        COALESCE(SUM(total), 0)
		 FROM orders`, domain.OrderStatusPending,
	).Scan(&stats.TotalOrders, &stats.PendingOrders, &stats.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return &stats, nil
}
