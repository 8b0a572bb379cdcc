package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atrium-inc/atrium/internal/domain/catalog"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

const (
	categoryKeyPrefix   = "catalog:category:"
	skillGroupKeyPrefix = "catalog:skill_group:"
	catalogTTL          = 30 * time.Minute
	// Short TTL for not-found markers so repeated lookups of unknown codes
	// don't hit the database on every intake (cache penetration protection).
	catalogNullMarkerTTL = 2 * time.Minute
	catalogNullMarker    = "_null"
)

// CatalogCache is a read-through Redis cache in front of a
// catalog.ReferenceDataStore. Classification reads reference data on every
// intake; the data itself changes rarely.
type CatalogCache struct {
	client *redis.Client
	store  catalog.ReferenceDataStore
	logger logger.Interface
}

// NewCatalogCache creates a new CatalogCache wrapping the given store.
func NewCatalogCache(client *redis.Client, store catalog.ReferenceDataStore, logger logger.Interface) *CatalogCache {
	return &CatalogCache{
		client: client,
		store:  store,
		logger: logger,
	}
}

func (c *CatalogCache) CategoryByCode(ctx context.Context, code string) (*catalog.Category, error) {
	key := categoryKeyPrefix + code

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == catalogNullMarker {
			return nil, nil
		}
		var category catalog.Category
		if err := json.Unmarshal([]byte(cached), &category); err == nil {
			return &category, nil
		}
		// Corrupt entry: fall through to the store and overwrite.
	case err != redis.Nil:
		c.logger.Warnw("catalog cache read failed, falling back to store", "key", key, "error", err)
	}

	category, err := c.store.CategoryByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	c.setCatalogEntry(ctx, key, category)
	return category, nil
}

func (c *CatalogCache) SkillGroupByCode(ctx context.Context, code string) (*catalog.SkillGroup, error) {
	key := skillGroupKeyPrefix + code

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == catalogNullMarker {
			return nil, nil
		}
		var group catalog.SkillGroup
		if err := json.Unmarshal([]byte(cached), &group); err == nil {
			return &group, nil
		}
	case err != redis.Nil:
		c.logger.Warnw("catalog cache read failed, falling back to store", "key", key, "error", err)
	}

	group, err := c.store.SkillGroupByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	c.setCatalogEntry(ctx, key, group)
	return group, nil
}

// Invalidate drops the cached entries for a category and its skill group.
// Called by admin tooling after reference data edits.
func (c *CatalogCache) Invalidate(ctx context.Context, categoryCode, skillGroupCode string) error {
	keys := []string{categoryKeyPrefix + categoryCode, skillGroupKeyPrefix + skillGroupCode}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

// setCatalogEntry writes the entry (or a null marker for unknown codes) best
// effort; a write failure only costs the next read a store round trip.
func (c *CatalogCache) setCatalogEntry(ctx context.Context, key string, value any) {
	if value == nil || isNilPointer(value) {
		if err := c.client.Set(ctx, key, catalogNullMarker, catalogNullMarkerTTL).Err(); err != nil {
			c.logger.Warnw("catalog cache write failed", "key", key, "error", err)
		}
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warnw("catalog cache marshal failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, catalogTTL).Err(); err != nil {
		c.logger.Warnw("catalog cache write failed", "key", key, "error", err)
	}
}

func isNilPointer(value any) bool {
	switch v := value.(type) {
	case *catalog.Category:
		return v == nil
	case *catalog.SkillGroup:
		return v == nil
	default:
		return false
	}
}
