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

// CreateOrderRequest is the order submission payload
type CreateOrderRequest struct {
	UserEmail       string             `json:"user_email" binding:"required,email"`
	UserName        string             `json:"user_name" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1"`
	Total           float64            `json:"total" binding:"required,min=0"`
	PaymentMethod   string             `json:"payment_method" binding:"required"`
	ShippingAddress ShippingAddress    `json:"shipping_address" binding:"required"`
}

type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

type ShippingAddress struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

// HandleCreateOrder handles POST /api/orders. Every order is created as
// pending; requests carry no idempotency key, so a client retry after a
// timeout creates a second order.
func HandleCreateOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		paymentMethod := domain.PaymentMethod(req.PaymentMethod)
		if !paymentMethod.IsValid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "unknown payment method",
			})
			return
		}

		items := make([]domain.OrderItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = domain.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
		}

		now := time.Now().UTC()
		order := &domain.Order{
			ID:            uuid.New().String(),
			UserEmail:     req.UserEmail,
			UserName:      req.UserName,
			Items:         items,
			Total:         req.Total,
			Status:        domain.OrderStatusPending,
			PaymentMethod: paymentMethod,
			ShippingAddress: domain.ShippingAddress{
				Address:    req.ShippingAddress.Address,
				City:       req.ShippingAddress.City,
				PostalCode: req.ShippingAddress.PostalCode,
				Country:    req.ShippingAddress.Country,
				Phone:      req.ShippingAddress.Phone,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := repos.Order.Create(c.Request.Context(), order); err != nil {
			logger.Error("Failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		// Notification email is mocked
		logger.Info("Order notification sent",
			zap.String("order_id", order.ID),
			zap.String("user_email", order.UserEmail),
		)

		c.JSON(http.StatusOK, order)
	}
}

// HandleGetOrder handles GET /api/orders/:id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := repos.Order.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// HandleListOrders handles GET /api/orders with an optional user_email filter
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repos.Order.List(c.Request.Context(), c.Query("user_email"))
		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusRequest is the admin status update payload
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleUpdateOrderStatus handles PATCH /api/orders/:id/status (admin).
// Transitions only move forward through the lifecycle.
func HandleUpdateOrderStatus(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		newStatus := domain.OrderStatus(req.Status)
		if !newStatus.IsValid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown status"})
			return
		}

		orderID := c.Param("id")
		order, err := repos.Order.GetByID(c.Request.Context(), orderID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		if !order.Status.CanTransitionTo(newStatus) {
			transitionErr := &apperrors.ErrInvalidStateTransition{
				From: string(order.Status),
				To:   string(newStatus),
			}
			c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
			return
		}

		if err := repos.Order.UpdateStatus(c.Request.Context(), orderID, newStatus); err != nil {
			logger.Error("Failed to update order status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": newStatus})
	}
}
