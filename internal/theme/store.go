// Package theme persists the shopper's dark-mode preference.
package theme

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/angelmondragon/storefront-gate/pkg/kv"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
)

const storageKey = "theme_dark"

// Store keeps the dark-mode flag in memory and mirrors it to persistent
// storage as "1" or "0" under the theme_dark key.
type Store struct {
	storage kv.Store
	logg    *logger.Logger

	mu   sync.Mutex
	dark bool
}

// NewStore loads the persisted preference, falling back to defaultDark when
// nothing is stored or the stored value is unreadable.
func NewStore(ctx context.Context, storage kv.Store, logg *logger.Logger, defaultDark bool) (*Store, error) {
	if storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage required")
	}

	s := &Store{storage: storage, logg: logg, dark: defaultDark}

	raw, err := storage.Get(ctx, storageKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		if logg != nil {
			logg.Warn(ctx, "load theme preference: "+err.Error())
		}
	case raw == "1":
		s.dark = true
	case raw == "0":
		s.dark = false
	}

	return s, nil
}

// Dark reports whether dark mode is active.
func (s *Store) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Toggle flips the preference and persists the new value before applying it.
func (s *Store) Toggle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(ctx, !s.dark)
}

// Set forces the preference to dark, persisting before applying.
func (s *Store) Set(ctx context.Context, dark bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(ctx, dark)
}

func (s *Store) setLocked(ctx context.Context, dark bool) (bool, error) {
	value := "0"
	if dark {
		value = "1"
	}
	if err := s.storage.Set(ctx, storageKey, value); err != nil {
		return s.dark, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist theme preference")
	}
	s.dark = dark
	return s.dark, nil
}
