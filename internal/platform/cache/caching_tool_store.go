// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"vuttr_backend/internal/feature/tools/domain/entity"
	"vuttr_backend/internal/feature/tools/usecase"
)

// CachingToolStore decorates a ToolStore with Redis caching of the
// per-owner listing queries. It implements the decorator pattern,
// transparently adding caching without modifying the underlying store.
type CachingToolStore struct {
	inner     usecase.ToolStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingToolStore implements ToolStore.
var _ usecase.ToolStore = (*CachingToolStore)(nil)

// NewCachingToolStore decorates a ToolStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tools".
func NewCachingToolStore(rdb *redis.Client, ttl time.Duration, inner usecase.ToolStore, namespace string) *CachingToolStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tools"
	}
	return &CachingToolStore{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// AddOwnedTool persists the tool through the inner store and invalidates
// the owner's cached listings.
func (c *CachingToolStore) AddOwnedTool(ctx context.Context, t *entity.Tool) error {
	if err := c.inner.AddOwnedTool(ctx, t); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Best effort: don't fail the write if cache deletion fails
	_ = c.deleteByPattern(ctx, c.ownerKeyPrefix(t.OwnerID)+"*")
	return nil
}

// RemoveOwnedTool removes the tool through the inner store and invalidates
// the owner's cached listings. The owner id has to be resolved before the
// delete, since the tool record is gone afterwards.
func (c *CachingToolStore) RemoveOwnedTool(ctx context.Context, toolID string) error {
	var ownerID string
	if c.rdb != nil {
		t, err := c.inner.FindByID(ctx, toolID)
		if err != nil {
			return err
		}
		ownerID = t.OwnerID
	}

	if err := c.inner.RemoveOwnedTool(ctx, toolID); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	_ = c.deleteByPattern(ctx, c.ownerKeyPrefix(ownerID)+"*")
	return nil
}

// FindByID is a passthrough. Single-record lookups only back the mutation
// paths and are not worth a cache entry of their own.
func (c *CachingToolStore) FindByID(ctx context.Context, id string) (*entity.Tool, error) {
	return c.inner.FindByID(ctx, id)
}

// ListOwned retrieves an owner's tools, checking cache first then falling
// back to the database.
func (c *CachingToolStore) ListOwned(ctx context.Context, ownerID string) ([]entity.Tool, error) {
	if c.rdb == nil {
		return c.inner.ListOwned(ctx, ownerID)
	}

	key := c.ownerKeyPrefix(ownerID) + "all"
	return c.fetch(ctx, key, func() ([]entity.Tool, error) {
		return c.inner.ListOwned(ctx, ownerID)
	})
}

// ListByOwnerAndTag retrieves an owner's tools carrying the given tag,
// checking cache first then falling back to the database.
func (c *CachingToolStore) ListByOwnerAndTag(ctx context.Context, ownerID, tag string) ([]entity.Tool, error) {
	if c.rdb == nil {
		return c.inner.ListByOwnerAndTag(ctx, ownerID, tag)
	}

	key := c.ownerKeyPrefix(ownerID) + "tag:" + safe(tag)
	return c.fetch(ctx, key, func() ([]entity.Tool, error) {
		return c.inner.ListByOwnerAndTag(ctx, ownerID, tag)
	})
}

// fetch implements the cache-aside flow shared by the listing queries.
// Only successful results are cached; not-found errors must keep hitting
// the database so a later signup is observed immediately.
func (c *CachingToolStore) fetch(ctx context.Context, key string, load func() ([]entity.Tool, error)) ([]entity.Tool, error) {
	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Tool
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ownerKeyPrefix generates the key prefix under which all of an owner's
// cached listings live.
func (c *CachingToolStore) ownerKeyPrefix(ownerID string) string {
	return fmt.Sprintf("%s:owner:%s:", c.namespace, safe(ownerID))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingToolStore) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe encodes one Redis key segment. The encoding is injective, so two
// distinct tags can never collide on the same cache key.
func safe(s string) string {
	return url.QueryEscape(s)
}
