package repository

import (
	"time"

	"github.com/evgeniy-krivenko/minds/pkg/database"
)

// Repo is the persistent mind store. Every method issues exactly one statement
// through db, so the pool behind it bounds the number of concurrent operations.
type Repo struct {
	db  database.Querier
	now func() time.Time
}

func New(db database.Querier) *Repo {
	return &Repo{
		db:  db,
		now: time.Now,
	}
}
