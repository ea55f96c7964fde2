package api_test

import (
	"context"

	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/internal/repository"
)

// Func-field mocks for the repository interfaces

type productRepoMock struct {
	ListFunc     func(ctx context.Context, category, search string) ([]domain.Product, error)
	GetByIDFunc  func(ctx context.Context, id string) (*domain.Product, error)
	CreateFunc   func(ctx context.Context, product *domain.Product) error
	FeaturedFunc func(ctx context.Context, limit int) ([]domain.Product, error)
	CountFunc    func(ctx context.Context) (int, error)
}

func (m *productRepoMock) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	return m.ListFunc(ctx, category, search)
}

func (m *productRepoMock) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *productRepoMock) Create(ctx context.Context, product *domain.Product) error {
	return m.CreateFunc(ctx, product)
}

func (m *productRepoMock) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	return m.FeaturedFunc(ctx, limit)
}

func (m *productRepoMock) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

type categoryRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Category, error)
	CreateFunc func(ctx context.Context, category *domain.Category) error
}

func (m *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	return m.ListFunc(ctx)
}

func (m *categoryRepoMock) Create(ctx context.Context, category *domain.Category) error {
	return m.CreateFunc(ctx, category)
}

type orderRepoMock struct {
	CreateFunc       func(ctx context.Context, order *domain.Order) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Order, error)
	ListFunc         func(ctx context.Context, userEmail string) ([]domain.Order, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.OrderStatus) error
	StatsFunc        func(ctx context.Context) (*repository.OrderStats, error)
}

func (m *orderRepoMock) Create(ctx context.Context, order *domain.Order) error {
	return m.CreateFunc(ctx, order)
}

func (m *orderRepoMock) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *orderRepoMock) List(ctx context.Context, userEmail string) ([]domain.Order, error) {
	return m.ListFunc(ctx, userEmail)
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *orderRepoMock) Stats(ctx context.Context) (*repository.OrderStats, error) {
	return m.StatsFunc(ctx)
}
