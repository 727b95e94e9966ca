package checkers

import (
	"context"
	"time"

	storage "github.com/campushub/clubevents/pkg/storage/postgres"
)

// StoreChecker reports readiness of the document store handle: not ready until
// the handle is bound, then a short ping decides.
type StoreChecker struct {
	store *storage.Handle
}

func NewStoreChecker(store *storage.Handle) *StoreChecker {
	return &StoreChecker{store: store}
}

func (c *StoreChecker) Name() string { return "postgres" }

func (c *StoreChecker) Check(ctx context.Context) error {
	pool, err := c.store.Acquire()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return pool.Ping(ctx)
}
