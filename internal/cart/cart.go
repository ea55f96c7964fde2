package cart

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/domain"
)

// LineItem is one product entry in the cart, uniquely keyed by product ID
type LineItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unit_price"`
	Images    []string `json:"images"`
	Quantity  int      `json:"quantity"`
}

// Store owns the single in-session cart and keeps the persisted snapshot
// consistent with every mutation. All operations run on one logical thread of
// UI event handling; there is no concurrent-writer scenario.
type Store struct {
	items  []LineItem
	snaps  Snapshotter
	logger *zap.Logger
}

// NewStore creates an empty cart store backed by the given snapshotter
func NewStore(snaps Snapshotter, logger *zap.Logger) *Store {
	return &Store{
		snaps:  snaps,
		logger: logger,
	}
}

// Restore loads the persisted snapshot, replacing in-memory state. It is
// invoked once at startup. An absent or malformed snapshot leaves the cart
// empty; malformed data is discarded without surfacing an error.
func (s *Store) Restore(ctx context.Context) {
	data, err := s.snaps.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			s.logger.Warn("Failed to load cart snapshot, starting empty", zap.Error(err))
		}
		s.items = nil
		return
	}

	items, ok := DecodeSnapshot(data)
	if !ok {
		s.logger.Warn("Discarding malformed cart snapshot")
		s.items = nil
		return
	}
	s.items = items
}

// AddItem adds one unit of the product to the cart. An existing line item has
// its quantity incremented in place, preserving position; otherwise a new line
// item with quantity 1 is appended. Stock limits are not checked here.
func (s *Store) AddItem(ctx context.Context, product domain.Product) {
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	images := make([]string, len(product.Images))
	copy(images, product.Images)

	s.items = append(s.items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Images:    images,
		Quantity:  1,
	})
	s.persist(ctx)
}

// RemoveItem deletes the line item with the given product ID. Removing an
// absent item is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// SetQuantity replaces the quantity of the matching line item, preserving its
// position. A quantity of zero or less removes the item entirely. Absent IDs
// are a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart and removes the persisted snapshot entirely
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	if err := s.snaps.Clear(ctx); err != nil {
		s.logger.Warn("Failed to clear cart snapshot", zap.Error(err))
	}
}

// Items returns a copy of the cart's line items in insertion order. Mutating
// the returned slice never affects the cart.
func (s *Store) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	for i, item := range s.items {
		images := make([]string, len(item.Images))
		copy(images, item.Images)
		item.Images = images
		items[i] = item
	}
	return items
}

// Len returns the number of line items in the cart
func (s *Store) Len() int {
	return len(s.items)
}

// Quantity returns the quantity of the given product, zero when absent
func (s *Store) Quantity(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return s.items[i].Quantity
		}
	}
	return 0
}

// persist writes the snapshot synchronously after a mutation, so a reload
// never loses state accumulated before a crash. Persistence failures are
// logged and never block the mutation itself.
func (s *Store) persist(ctx context.Context) {
	data, err := EncodeSnapshot(s.items)
	if err != nil {
		s.logger.Warn("Failed to encode cart snapshot", zap.Error(err))
		return
	}
	if err := s.snaps.Save(ctx, data); err != nil {
		s.logger.Warn("Failed to persist cart snapshot", zap.Error(err))
	}
}
