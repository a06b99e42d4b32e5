package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Query caches fetch results with two lifetimes: entries younger than
// StaleTime are served without fetching, and entries are retained for
// GCTime so a failed refetch can still hand back the last good data.
type Query struct {
	store     Store
	staleTime time.Duration
	gcTime    time.Duration
	now       func() time.Time
	log       *zap.Logger
}

type QueryConfig struct {
	StaleTime time.Duration
	GCTime    time.Duration
	Now       func() time.Time
	Logger    *zap.Logger
}

type entry struct {
	FetchedAt time.Time       `json:"fetchedAt"`
	Data      json.RawMessage `json:"data"`
}

func NewQuery(store Store, cfg QueryConfig) *Query {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.GCTime < cfg.StaleTime {
		cfg.GCTime = cfg.StaleTime
	}
	return &Query{
		store:     store,
		staleTime: cfg.StaleTime,
		gcTime:    cfg.GCTime,
		now:       cfg.Now,
		log:       cfg.Logger,
	}
}

// Invalidate drops every entry whose key starts with prefix; the next
// Fetch for those keys goes to the source.
func (q *Query) Invalidate(ctx context.Context, prefix string) error {
	return q.store.DeletePrefix(ctx, prefix)
}

// Fetch returns the cached value for key or calls fetch. When fetch fails
// and a retained entry exists, that entry is returned together with the
// error, so callers can surface partial data.
func Fetch[T any](ctx context.Context, q *Query, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	cached, haveCached := q.load(ctx, key)
	if haveCached && q.now().Sub(cached.FetchedAt) < q.staleTime {
		var v T
		if err := json.Unmarshal(cached.Data, &v); err == nil {
			return v, nil
		}
		haveCached = false
	}

	v, err := fetch(ctx)
	if err != nil {
		if haveCached {
			var stale T
			if uerr := json.Unmarshal(cached.Data, &stale); uerr == nil {
				q.log.Warn("serving retained cache entry after fetch failure",
					zap.String("key", key),
					zap.Time("fetched_at", cached.FetchedAt),
					zap.Error(err),
				)
				return stale, err
			}
		}
		return zero, err
	}

	q.save(ctx, key, v)
	return v, nil
}

func (q *Query) load(ctx context.Context, key string) (entry, bool) {
	raw, err := q.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			q.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return entry{}, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		q.log.Warn("cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return entry{}, false
	}
	return e, true
}

func (q *Query) save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		q.log.Warn("cache value not serializable", zap.String("key", key), zap.Error(err))
		return
	}
	raw, err := json.Marshal(entry{FetchedAt: q.now(), Data: data})
	if err != nil {
		return
	}
	if err := q.store.Set(ctx, key, raw, q.gcTime); err != nil {
		q.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
