package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/enum"
	"github.com/cyclebees/estimates-api/internal/pricing"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultLaCartePricePaise = 9900
	DefaultLaCarteCacheTTL   = time.Minute
)

// LaCarteSettings is the fixed package charge added to every order.
type LaCarteSettings struct {
	RealPricePaise    int64
	CurrentPricePaise int64
	DiscountNote      string
	IsActive          bool
	UpdatedAt         time.Time
}

// DefaultLaCarte is used until staff save settings for the first time.
func DefaultLaCarte() LaCarteSettings {
	return LaCarteSettings{
		RealPricePaise:    DefaultLaCartePricePaise,
		CurrentPricePaise: DefaultLaCartePricePaise,
		IsActive:          true,
	}
}

// DiscountPercentage is the discount of the current price against the real one.
func (s LaCarteSettings) DiscountPercentage() int64 {
	return pricing.DiscountPercentage(s.RealPricePaise, s.CurrentPricePaise)
}

// HasDiscount reports whether the current price is below the real price.
func (s LaCarteSettings) HasDiscount() bool {
	return s.RealPricePaise > s.CurrentPricePaise
}

// SettingsStore reads the La Carte singleton.
// Satisfied by *database.Queries.
type SettingsStore interface {
	GetLaCarteSettings(ctx context.Context) (database.LacarteSetting, error)
}

// LoadLaCarte reads the settings row, falling back to defaults when the row
// has not been created yet.
func LoadLaCarte(ctx context.Context, store SettingsStore) (LaCarteSettings, error) {
	row, err := store.GetLaCarteSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultLaCarte(), nil
		}
		return LaCarteSettings{}, fmt.Errorf("get lacarte settings: %w", err)
	}
	return LaCarteFromRow(row), nil
}

// LaCarteFromRow converts the stored row.
func LaCarteFromRow(row database.LacarteSetting) LaCarteSettings {
	return LaCarteSettings{
		RealPricePaise:    row.RealPricePaise,
		CurrentPricePaise: row.CurrentPricePaise,
		DiscountNote:      row.DiscountNote,
		IsActive:          row.IsActive,
		UpdatedAt:         row.UpdatedAt,
	}
}

// LaCarteCache is a read-through cache over the La Carte singleton used for
// display. Confirmation never reads from it.
type LaCarteCache struct {
	store SettingsStore
	ttl   time.Duration
	now   func() time.Time

	mu       sync.RWMutex
	cached   *LaCarteSettings
	loadedAt time.Time
	gen      uint64

	group singleflight.Group
}

// NewLaCarteCache creates a cache. A non-positive ttl uses DefaultLaCarteCacheTTL.
func NewLaCarteCache(store SettingsStore, ttl time.Duration) *LaCarteCache {
	if ttl <= 0 {
		ttl = DefaultLaCarteCacheTTL
	}
	return &LaCarteCache{store: store, ttl: ttl, now: time.Now}
}

// Get returns cached settings while fresh, otherwise loads them once for
// all concurrent callers.
func (c *LaCarteCache) Get(ctx context.Context) (LaCarteSettings, error) {
	if s, ok := c.fresh(); ok {
		return s, nil
	}

	v, err, _ := c.group.Do(enum.LaCarteSettingsID, func() (interface{}, error) {
		if s, ok := c.fresh(); ok {
			return s, nil
		}
		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		s, err := LoadLaCarte(ctx, c.store)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// Drop the result if Invalidate ran while loading.
		if c.gen == gen {
			c.cached = &s
			c.loadedAt = c.now()
		}
		c.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return LaCarteSettings{}, err
	}
	return v.(LaCarteSettings), nil
}

func (c *LaCarteCache) fresh() (LaCarteSettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached != nil && c.now().Sub(c.loadedAt) < c.ttl {
		return *c.cached, true
	}
	return LaCarteSettings{}, false
}

// Invalidate drops the cached value so the next Get reloads.
func (c *LaCarteCache) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.gen++
	c.mu.Unlock()
	c.group.Forget(enum.LaCarteSettingsID)
}
