package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"time"
)

// Cached puts a redis read through cache in front of a Store. Cache failures are logged and never fail the call.
type Cached struct {
	Store
	log     *zap.SugaredLogger
	cache   redis.Cmdable
	ttl     time.Duration
	timeout time.Duration
}

func NewCached(log *zap.SugaredLogger, store Store, cache redis.Cmdable, ttl, operationTimeout time.Duration) *Cached {
	return &Cached{
		Store:   store,
		log:     log,
		cache:   cache,
		ttl:     ttl,
		timeout: operationTimeout,
	}
}

func (c *Cached) Find(ctx context.Context, id string) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, c.timeout)
	defer tcCancel()
	get, err := c.cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		c.log.Error("failure to get notes ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var note Note
		if err := json.Unmarshal([]byte(get), &note); err != nil {
			c.log.Errorf("error parsing cached response for key %s: %s", key, err)
		} else {
			return note, nil
		}
	}

	note, err := c.Store.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}

	if data, err := json.Marshal(note); err != nil {
		c.log.Errorf("error parsing data to cache for key %s: %s", key, err)
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, c.timeout)
		defer tcCancel()

		if err := c.cache.Set(tcCtx, key, string(data), c.ttl).Err(); err != nil {
			c.log.Error("failure to set notes ", id, " into cache: ", err.Error())
		} else {
			c.verify(ctx, note)
		}
	}

	return note, nil
}

// verify reads the backend again after a cache fill. An update or delete that landed between the first read and the
// fill has already evicted, so the stale value just written is evicted here.
func (c *Cached) verify(ctx context.Context, cached Note) {
	current, err := c.Store.Find(ctx, cached.Id)
	if err == nil && sameNote(current, cached) {
		return
	}
	if err != nil && err != ErrNotFound {
		c.log.Error("failure to verify notes ", cached.Id, " cache entry: ", err.Error())
	}
	c.evict(ctx, cached.Id)
}

func sameNote(a, b Note) bool {
	return a.Id == b.Id &&
		a.Title == b.Title &&
		a.Content == b.Content &&
		a.CreatedAt.Equal(b.CreatedAt) &&
		a.UpdatedAt.Equal(b.UpdatedAt)
}

func (c *Cached) Update(ctx context.Context, n Note) error {
	if err := c.Store.Update(ctx, n); err != nil {
		return err
	}
	c.evict(ctx, n.Id)
	return nil
}

func (c *Cached) Delete(ctx context.Context, id string) error {
	if err := c.Store.Delete(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, id)
	return nil
}

func (c *Cached) evict(ctx context.Context, id string) {
	tcCtx, tcCancel := context.WithTimeout(ctx, c.timeout)
	defer tcCancel()
	if err := c.cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		c.log.Error("failure to evict notes ", id, " from cache: ", err.Error())
	}
}
