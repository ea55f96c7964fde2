package repository

import (
	"context"

	"github.com/luxdrop/storefront/internal/domain"
)

// ProductRepository provides access to catalog products
type ProductRepository interface {
	List(ctx context.Context, category, search string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Featured(ctx context.Context, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
}

// CategoryRepository provides access to catalog categories
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
}

// OrderStats aggregates order figures for the admin dashboard
type OrderStats struct {
	TotalOrders   int
	PendingOrders int
	TotalRevenue  float64
}

// OrderRepository provides access to placed orders
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, userEmail string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Stats(ctx context.Context) (*OrderStats, error)
}

// Repositories bundles all repositories for injection into handlers
type Repositories struct {
	Product  ProductRepository
	Category CategoryRepository
	Order    OrderRepository
}
