package backend

import (
	"context"
	"net/url"

	"github.com/luxdrop/storefront/internal/domain"
)

// Products lists catalog products, optionally filtered by category or a
// name/description search term.
func (c *Client) Products(ctx context.Context, category, search string) ([]domain.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}

	var products []domain.Product
	if err := c.get(ctx, "/api/products", query, "products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by ID
func (c *Client) Product(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(productID), nil, "product", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FeaturedProducts fetches the highest-rated products for the home page
func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/products/featured/list", nil, "featured products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories lists the catalog categories
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/api/categories", nil, "categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
