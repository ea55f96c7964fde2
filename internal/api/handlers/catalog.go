package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/internal/repository"
	"github.com/luxdrop/storefront/pkg/apperrors"
)

// HandleListProducts handles GET /api/products
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")

		products, err := repos.Product.List(c.Request.Context(), category, search)
		if err != nil {
			logger.Error("Failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// HandleGetProduct handles GET /api/products/:id
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := repos.Product.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleFeaturedProducts handles GET /api/products/featured/list
func HandleFeaturedProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repos.Product.Featured(c.Request.Context(), 8)
		if err != nil {
			logger.Error("Failed to list featured products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// CreateProductRequest is the admin product creation payload
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Price         float64  `json:"price" binding:"required,min=0"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Category      string   `json:"category" binding:"required"`
	Images        []string `json:"images" binding:"required"`
	Stock         int      `json:"stock" binding:"min=0"`
	Supplier      string   `json:"supplier" binding:"required"`
	Tags          []string `json:"tags"`
}

// HandleCreateProduct handles POST /api/products (admin)
func HandleCreateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product := &domain.Product{
			ID:            uuid.New().String(),
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Category:      req.Category,
			Images:        req.Images,
			Stock:         req.Stock,
			Supplier:      req.Supplier,
			Tags:          req.Tags,
			Rating:        5.0,
			CreatedAt:     time.Now().UTC(),
		}
		if product.Tags == nil {
			product.Tags = []string{}
		}

		if err := repos.Product.Create(c.Request.Context(), product); err != nil {
			logger.Error("Failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleListCategories handles GET /api/categories
func HandleListCategories(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repos.Category.List(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list categories", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategoryRequest is the admin category creation payload
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Image string `json:"image"`
}

// HandleCreateCategory handles POST /api/categories (admin)
func HandleCreateCategory(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		category := &domain.Category{
			ID:    uuid.New().String(),
			Name:  req.Name,
			Slug:  req.Slug,
			Image: req.Image,
		}
		if err := repos.Category.Create(c.Request.Context(), category); err != nil {
			logger.Error("Failed to create category", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
