package library

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/metrics"
)

// CachedConfig configures a Cached lookup.
type CachedConfig struct {
	Lookup Lookup
	// Size bounds each of the creature, hazard and item caches.
	Size int
}

// Validate ensures the config is usable.
func (c *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}
	errors.ValidateMin("Size", c.Size, 1, vb)
	return vb.Build()
}

// missing marks an id the library has no record or price for.
type missing struct{}

// Cached memoizes a Lookup. Misses are cached too, so unknown ids do not hit
// the library on every recalculation. Call Purge after the library changes.
type Cached struct {
	next      Lookup
	creatures *lru.Cache
	hazards   *lru.Cache
	prices    *lru.Cache

	group   singleflight.Group
	curveMu sync.RWMutex
	curve   engine.ReferenceCurve
}

var _ Lookup = (*Cached)(nil)

// NewCached wraps cfg.Lookup with LRU caches.
func NewCached(cfg *CachedConfig) (*Cached, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Cached{next: cfg.Lookup}
	for _, dst := range []**lru.Cache{&c.creatures, &c.hazards, &c.prices} {
		cache, err := lru.New(cfg.Size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create cache")
		}
		*dst = cache
	}
	return c, nil
}

// Purge drops every cached entry.
func (c *Cached) Purge() {
	c.creatures.Purge()
	c.hazards.Purge()
	c.prices.Purge()
	c.curveMu.Lock()
	c.curve = nil
	c.curveMu.Unlock()
}

// CreatureLevels implements Lookup.
func (c *Cached) CreatureLevels(ctx context.Context, ids []string) (map[string]int, error) {
	return cachedLookup(ctx, c.creatures, ids, c.next.CreatureLevels)
}

// Hazards implements Lookup.
func (c *Cached) Hazards(ctx context.Context, ids []string) (map[string]HazardInfo, error) {
	return cachedLookup(ctx, c.hazards, ids, c.next.Hazards)
}

// ItemPrices implements Lookup.
func (c *Cached) ItemPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	return cachedLookup(ctx, c.prices, ids, c.next.ItemPrices)
}

// TreasureCurve implements Lookup. Concurrent first loads share one query.
func (c *Cached) TreasureCurve(ctx context.Context) (engine.ReferenceCurve, error) {
	c.curveMu.RLock()
	curve := c.curve
	c.curveMu.RUnlock()
	if curve != nil {
		metrics.LibraryCacheLookups.WithLabelValues("hit").Inc()
		return curve, nil
	}

	v, err, _ := c.group.Do("treasure_curve", func() (interface{}, error) {
		loaded, err := c.next.TreasureCurve(ctx)
		if err != nil {
			return nil, err
		}
		c.curveMu.Lock()
		c.curve = loaded
		c.curveMu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LibraryCacheLookups.WithLabelValues("miss").Inc()
	return v.(engine.ReferenceCurve), nil
}

func cachedLookup[V any](
	ctx context.Context,
	cache *lru.Cache,
	ids []string,
	load func(context.Context, []string) (map[string]V, error),
) (map[string]V, error) {
	out := make(map[string]V, len(ids))
	var pending []string
	for _, id := range dedupe(ids) {
		cached, ok := cache.Get(id)
		if !ok {
			pending = append(pending, id)
			continue
		}
		metrics.LibraryCacheLookups.WithLabelValues("hit").Inc()
		if v, found := cached.(V); found {
			out[id] = v
		}
	}

	if len(pending) == 0 {
		return out, nil
	}
	metrics.LibraryCacheLookups.WithLabelValues("miss").Add(float64(len(pending)))

	loaded, err := load(ctx, pending)
	if err != nil {
		return nil, err
	}
	for _, id := range pending {
		v, found := loaded[id]
		if !found {
			cache.Add(id, missing{})
			continue
		}
		cache.Add(id, v)
		out[id] = v
	}
	return out, nil
}
