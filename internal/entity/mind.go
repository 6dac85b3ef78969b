package entity

import (
	"errors"
	"time"
)

var (
	// ErrStorage marks a failure of the storage backend: it is unreachable or a statement failed.
	ErrStorage = errors.New("storage failure")

	ErrInvalidID      = errors.New("invalid mind id")
	ErrInvalidContent = errors.New("invalid mind content")
)

// Mind is a short text note. It never changes after creation.
type Mind struct {
	ID          uint64
	PublishTime time.Time
	Content     string
}

// PublishTimeAt returns t in UTC without its sub-second component.
func PublishTimeAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
