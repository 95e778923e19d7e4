package note

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCached(t *testing.T) (*miniredis.Miniredis, *Memory, *Cached) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
	})
	backend := NewMemory()
	return s, backend, NewCached(zap.NewNop().Sugar(), backend, rdb, time.Hour, time.Second)
}

func TestCachedFind(t *testing.T) {
	s, backend, cached := newCached(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	n := Note{Id: "01HZX", Title: "my notes", Content: "my notes text", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, cached.Insert(ctx, n))
	assert.False(t, s.Exists("notes.01HZX"))

	found, err := cached.Find(ctx, n.Id)
	require.NoError(t, err)
	assert.Equal(t, "my notes", found.Title)
	assert.True(t, s.Exists("notes.01HZX"))
	assert.Equal(t, time.Hour, s.TTL("notes.01HZX"))

	// served from the cache while the backend changed behind its back
	require.NoError(t, backend.Update(ctx, Note{Id: n.Id, Title: "changed", Content: "changed", UpdatedAt: now}))
	found, err = cached.Find(ctx, n.Id)
	require.NoError(t, err)
	assert.Equal(t, "my notes", found.Title)
	assert.True(t, now.Equal(found.CreatedAt))
}

func TestCachedEviction(t *testing.T) {
	s, _, cached := newCached(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	n := Note{Id: "01HZY", Title: "title", Content: "content", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, cached.Insert(ctx, n))
	_, err := cached.Find(ctx, n.Id)
	require.NoError(t, err)
	require.True(t, s.Exists("notes.01HZY"))

	n.Title = "new title"
	require.NoError(t, cached.Update(ctx, n))
	assert.False(t, s.Exists("notes.01HZY"))

	found, err := cached.Find(ctx, n.Id)
	require.NoError(t, err)
	assert.Equal(t, "new title", found.Title)

	require.NoError(t, cached.Delete(ctx, n.Id))
	assert.False(t, s.Exists("notes.01HZY"))
	_, err = cached.Find(ctx, n.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, cached.Delete(ctx, n.Id), ErrNotFound)
}

func TestCachedWithoutRedis(t *testing.T) {
	s, _, cached := newCached(t)
	ctx := context.Background()
	s.Close()

	n := Note{Id: "01HZZ", Title: "title", Content: "content"}
	require.NoError(t, cached.Insert(ctx, n))

	found, err := cached.Find(ctx, n.Id)
	require.NoError(t, err)
	assert.Equal(t, "title", found.Title)

	n.Title = "other"
	require.NoError(t, cached.Update(ctx, n))
	require.NoError(t, cached.Delete(ctx, n.Id))
}

// pausingStore holds the first Find after it read the backend, until release is closed
type pausingStore struct {
	*Memory
	read    chan struct{}
	release chan struct{}
	once    sync.Once
}

func (p *pausingStore) Find(ctx context.Context, id string) (Note, error) {
	n, err := p.Memory.Find(ctx, id)
	paused := false
	p.once.Do(func() { paused = true })
	if paused {
		close(p.read)
		<-p.release
	}
	return n, err
}

func TestCachedFindRacingWrites(t *testing.T) {
	for _, tc := range []struct {
		name  string
		write func(ctx context.Context, c *Cached, n Note) error
		check func(t *testing.T, found Note, err error)
	}{
		{
			name:  "delete",
			write: func(ctx context.Context, c *Cached, n Note) error { return c.Delete(ctx, n.Id) },
			check: func(t *testing.T, _ Note, err error) { assert.ErrorIs(t, err, ErrNotFound) },
		},
		{
			name: "update",
			write: func(ctx context.Context, c *Cached, n Note) error {
				n.Title = "new title"
				n.UpdatedAt = n.UpdatedAt.Add(time.Millisecond)
				return c.Update(ctx, n)
			},
			check: func(t *testing.T, found Note, err error) {
				require.NoError(t, err)
				assert.Equal(t, "new title", found.Title)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := miniredis.RunT(t)
			rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
			t.Cleanup(func() {
				_ = rdb.Close()
			})
			backend := &pausingStore{Memory: NewMemory(), read: make(chan struct{}), release: make(chan struct{})}
			cached := NewCached(zap.NewNop().Sugar(), backend, rdb, time.Hour, time.Second)
			ctx := context.Background()

			now := time.Now().UTC().Truncate(time.Millisecond)
			n := Note{Id: "01HZR", Title: "title", Content: "content", CreatedAt: now, UpdatedAt: now}
			require.NoError(t, backend.Memory.Insert(ctx, n))

			done := make(chan struct{})
			go func() {
				defer close(done)
				_, _ = cached.Find(ctx, n.Id)
			}()

			// the reader holds the old value while the write goes through and evicts
			<-backend.read
			require.NoError(t, tc.write(ctx, cached, n))
			close(backend.release)
			<-done

			found, err := cached.Find(ctx, n.Id)
			tc.check(t, found, err)
		})
	}
}
