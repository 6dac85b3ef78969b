package memory

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ids(minds []entity.Mind) []uint64 {
	out := make([]uint64, 0, len(minds))
	for _, m := range minds {
		out = append(out, m.ID)
	}
	return out
}

func TestStore_CreateIntoEmpty(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.UTC)
	s := New(WithClock(fixedClock(now)))
	ctx := context.Background()

	mind, err := s.Create(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, entity.Mind{
		ID:          1,
		PublishTime: time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		Content:     "hello",
	}, mind)

	minds, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Mind{mind}, minds)
}

func TestStore_DeleteFromSeed(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 2))

	minds, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, ids(minds))
}

func TestStore_NoReuseAfterDelete(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 2))

	mind, err := s.Create(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), mind.ID)

	minds, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 4}, ids(minds))
}

func TestStore_NextIDFollowsMaxNotCount(t *testing.T) {
	s := New(WithSeed([]entity.Mind{
		{ID: 10, Content: "ten"},
		{ID: 3, Content: "three"},
	}))

	mind, err := s.Create(context.Background(), "next")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), mind.ID)
}

func TestStore_RestartsAtOneWhenEmptied(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	for _, id := range []uint64{1, 2, 3} {
		require.NoError(t, s.Delete(ctx, id))
	}

	mind, err := s.Create(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), mind.ID)
}

func TestStore_DeleteMissing(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	before, err := s.List(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 999))

	after, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_DeleteTwice(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 1))
	first, err := s.List(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 1))
	second, err := s.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	minds, err := s.List(ctx)
	require.NoError(t, err)
	minds[0].Content = "mutated"
	minds[1].ID = 42

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed(), again)
}

func TestStore_SeedIsCopied(t *testing.T) {
	seed := DefaultSeed()
	s := New(WithSeed(seed))
	seed[0].Content = "mutated"

	minds, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "This is a test content.", minds[0].Content)
}

func TestStore_ListEmpty(t *testing.T) {
	minds, err := New().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, minds)
	assert.Empty(t, minds)
}

func TestStore_RoundTripKeepsOthers(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	created, err := s.Create(ctx, "")
	require.NoError(t, err)

	minds, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, minds, 4)

	assert.Equal(t, DefaultSeed(), minds[:3])
	assert.Equal(t, created, minds[3])
}

func TestStore_PublishTimeTruncated(t *testing.T) {
	s := New(WithClock(func() time.Time {
		return time.Now().Add(time.Duration(rand.Intn(1_000_000_000)))
	}))
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		mind, err := s.Create(ctx, fmt.Sprintf("m-%d", i))
		require.NoError(t, err)
		assert.Zero(t, mind.PublishTime.Nanosecond())
		assert.Equal(t, time.UTC, mind.PublishTime.Location())
	}
}

func TestStore_ConcurrentCreateUniqueIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	const (
		workers = 50
		perW    = 200
	)

	var mu sync.Mutex
	seen := make(map[uint64]struct{}, workers*perW)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(workerID int) {
			defer wg.Done()

			for i := 0; i < perW; i++ {
				mind, err := s.Create(ctx, fmt.Sprintf("w-%d-%d", workerID, i))
				if err != nil {
					t.Errorf("create: %v", err)
					return
				}

				mu.Lock()
				_, dup := seen[mind.ID]
				seen[mind.ID] = struct{}{}
				mu.Unlock()

				if dup {
					t.Errorf("duplicate id %d", mind.ID)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	assert.Len(t, seen, workers*perW)
	for id := uint64(1); id <= workers*perW; id++ {
		_, ok := seen[id]
		require.True(t, ok, "missing id %d", id)
	}
}

func TestStore_ConcurrentMixedOps(t *testing.T) {
	s := New(WithSeed(DefaultSeed()))
	ctx := context.Background()

	done := make(chan struct{})

	go func() {
		defer close(done)

		var wg sync.WaitGroup
		for w := 0; w < 20; w++ {
			wg.Add(1)
			go func(seed int64) {
				defer wg.Done()
				r := rand.New(rand.NewSource(seed))

				for i := 0; i < 500; i++ {
					switch r.Intn(3) {
					case 0:
						_, _ = s.Create(ctx, "x")
					case 1:
						_, _ = s.List(ctx)
					case 2:
						_ = s.Delete(ctx, uint64(r.Intn(100)+1))
					}
				}
			}(int64(w))
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("test timed out - possible deadlock")
	}

	minds, err := s.List(ctx)
	require.NoError(t, err)

	seen := make(map[uint64]struct{}, len(minds))
	for _, m := range minds {
		_, dup := seen[m.ID]
		require.False(t, dup, "duplicate id %d", m.ID)
		seen[m.ID] = struct{}{}
	}
}
