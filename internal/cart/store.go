// Package cart keeps the device-local shopping cart: mutate in memory,
// persist synchronously, survive process restart.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/angelmondragon/storefront-gate/pkg/kv"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
	"github.com/shopspring/decimal"
)

// storageKey holds the full serialized line sequence; the suffix versions the
// wire format.
const storageKey = "cart_items_v1"

// Store is the mutation-tracked cart. Every mutation re-persists the full
// line sequence before returning; derived totals are recomputed on each read
// and never stored.
type Store struct {
	storage kv.Store
	logg    *logger.Logger

	mu    sync.Mutex
	items []LineItem
}

// NewStore loads the persisted cart once. Missing or corrupt data yields an
// empty cart, never an error.
func NewStore(ctx context.Context, storage kv.Store, logg *logger.Logger) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage required")
	}

	s := &Store{storage: storage, logg: logg}
	s.items = s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) []LineItem {
	raw, err := s.storage.Get(ctx, storageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "cart load failed, starting empty")
		}
		return nil
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "persisted cart is corrupt, starting empty")
		}
		return nil
	}
	return items
}

// Add merges the item into an existing line with the same product and size,
// or appends a new line at the end. Quantities below 1 are coerced to 1.
func (s *Store) Add(ctx context.Context, item LineItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()
	merged := false
	for i := range next {
		if next[i].sameLine(item) {
			next[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		next = append(next, item)
	}

	return s.commitLocked(ctx, next)
}

// RemoveAt deletes the line at index. An out-of-range index is an explicit
// error, never a silent no-op.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return outOfRange(index, len(s.items))
	}

	next := s.copyLocked()
	next = append(next[:index], next[index+1:]...)
	return s.commitLocked(ctx, next)
}

// SetQuantity replaces the quantity of the line at index. Values below 1 are
// clamped to 1, never rejected.
func (s *Store) SetQuantity(ctx context.Context, index, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return outOfRange(index, len(s.items))
	}

	next := s.copyLocked()
	next[index].Quantity = quantity
	return s.commitLocked(ctx, next)
}

// Clear replaces the cart with an empty sequence.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, []LineItem{})
}

// Items returns a copy of the current line sequence in display order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// TotalItems is the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over all lines.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s *Store) copyLocked() []LineItem {
	next := make([]LineItem, len(s.items))
	copy(next, s.items)
	return next
}

// commitLocked persists the candidate sequence and only then makes it the
// in-memory state, so memory and disk cannot diverge on a write failure.
func (s *Store) commitLocked(ctx context.Context, next []LineItem) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.storage.Set(ctx, storageKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	s.items = next
	return nil
}

func outOfRange(index, size int) error {
	return pkgerrors.New(pkgerrors.CodeOutOfRange, "cart index out of range").
		WithDetails(map[string]any{"index": index, "size": size})
}
