package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/backend"
	"github.com/luxdrop/storefront/internal/config"
	"github.com/luxdrop/storefront/internal/tracking"
	"github.com/luxdrop/storefront/pkg/apperrors"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/track-order/main.go <order-id>")
		fmt.Println("Example: go run cmd/track-order/main.go 7f3b2c9a-1d4e-4f6a-9b8c-2e5d7a1f3c6b")
		os.Exit(1)
	}
	orderID := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := backend.NewClient(cfg.BackendURL, logger)

	order, err := client.Order(context.Background(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Printf("Order %s not found\n", orderID)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Failed to fetch order: %v\n", err)
		os.Exit(1)
	}

	view := tracking.Project(order.Status)
	fmt.Printf("Order %s\n", order.ID)
	fmt.Printf("Placed by: %s <%s>\n", order.UserName, order.UserEmail)
	fmt.Printf("Status: %s [%s]\n", view.Label, view.Icon)
	fmt.Printf("Total: %.2f EUR (%d items)\n", order.Total, len(order.Items))
}
