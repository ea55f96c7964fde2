package cart

import (
	"context"
	"encoding/json"
	"errors"
)

// SnapshotKey is the fixed namespace key the cart is persisted under
const SnapshotKey = "luxdrop_cart"

// ErrNoSnapshot is returned by Snapshotter.Load when no snapshot is persisted.
// Readers treat "no snapshot" and "empty snapshot" identically.
var ErrNoSnapshot = errors.New("no cart snapshot")

// Snapshotter persists the serialized cart under the fixed key
type Snapshotter interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// DecodeSnapshot parses a persisted snapshot. It is the single place where
// malformed persisted data is turned into the empty-cart fallback: ok is false
// when the data cannot be decoded, and the caller discards it silently.
func DecodeSnapshot(data []byte) ([]LineItem, bool) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}

	// Entries that could never have been written by a valid cart are dropped.
	valid := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			continue
		}
		valid = append(valid, item)
	}
	return valid, true
}

// EncodeSnapshot serializes cart line items for persistence
func EncodeSnapshot(items []LineItem) ([]byte, error) {
	return json.Marshal(items)
}
