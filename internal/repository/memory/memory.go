// Package memory implements the mind store over a process-local slice.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed pre-populates the store. Seed minds keep their explicit ids and timestamps.
func WithSeed(minds []entity.Mind) Option {
	return func(s *Store) { s.minds = slices.Clone(minds) }
}

// Store keeps minds in insertion order. It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	minds []entity.Mind
	now   func() time.Time
}

func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) List(context.Context) ([]entity.Mind, error) {
	s.mu.Lock()
	minds := slices.Clone(s.minds)
	s.mu.Unlock()

	if minds == nil {
		minds = []entity.Mind{}
	}

	return minds, nil
}

// Create assigns max(id)+1 and appends within a single lock acquisition.
func (s *Store) Create(_ context.Context, content string) (entity.Mind, error) {
	publishTime := entity.PublishTimeAt(s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID uint64
	for _, m := range s.minds {
		maxID = max(maxID, m.ID)
	}

	mind := entity.Mind{
		ID:          maxID + 1,
		PublishTime: publishTime,
		Content:     content,
	}
	s.minds = append(s.minds, mind)

	return mind, nil
}

func (s *Store) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	s.minds = slices.DeleteFunc(s.minds, func(m entity.Mind) bool { return m.ID == id })
	s.mu.Unlock()

	return nil
}
