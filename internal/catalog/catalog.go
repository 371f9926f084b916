// Package catalog provides read-through access to the skill catalog. The
// extractor takes the Source interface; callers pick the wrapper that fits
// their path: Memo for a single batch run, RedisCatalog for the query path.
package catalog

import (
	"context"
	"sync"
	"time"

	"jobscout/internal/domain/skill"
	"jobscout/internal/infrastructure/cache"
)

// Source loads the full skill catalog with aliases.
type Source interface {
	Skills(ctx context.Context) ([]skill.Skill, error)
}

// Memo caches the first successful load for the lifetime of the value. Scope
// one Memo per batch run so concurrent runs never share mutable state.
type Memo struct {
	src Source

	mu     sync.Mutex
	loaded bool
	skills []skill.Skill
}

func NewMemo(src Source) *Memo {
	return &Memo{src: src}
}

func (m *Memo) Skills(ctx context.Context) ([]skill.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return m.skills, nil
	}

	skills, err := m.src.Skills(ctx)
	if err != nil {
		return nil, err
	}
	m.skills = skills
	m.loaded = true
	return m.skills, nil
}

const redisKey = "catalog:skills"

// RedisCatalog is a read-through cache in front of the database catalog.
// Failures on the cache side fall back to the source.
type RedisCatalog struct {
	src   Source
	cache *cache.Redis
	ttl   time.Duration
}

func NewRedisCatalog(src Source, c *cache.Redis, ttl time.Duration) *RedisCatalog {
	if ttl <= 0 {
		ttl = cache.DefaultTTLFromEnv()
	}
	return &RedisCatalog{src: src, cache: c, ttl: ttl}
}

func (r *RedisCatalog) Skills(ctx context.Context) ([]skill.Skill, error) {
	var cached []skill.Skill
	if ok, err := r.cache.GetJSON(ctx, redisKey, &cached); err == nil && ok {
		return cached, nil
	}

	skills, err := r.src.Skills(ctx)
	if err != nil {
		return nil, err
	}

	_ = r.cache.SetJSON(ctx, redisKey, skills, r.ttl)
	return skills, nil
}

// Invalidate drops the cached catalog; call after the catalog changes.
func (r *RedisCatalog) Invalidate(ctx context.Context) error {
	return r.cache.Delete(ctx, redisKey)
}
