package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStoreUnavailable is returned by Handle.Acquire until a connection has
// been established.
var ErrStoreUnavailable = errors.New("store not connected yet")

// Connect opens a pgx connection pool and performs a Ping to ensure connectivity.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	// Reasonable defaults
	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Handle is an explicit store handle with a ready/not-ready lifecycle. It starts
// empty and is bound to a pool once a connection attempt succeeds; until then
// every Acquire fails with ErrStoreUnavailable. Repositories hold the handle,
// never a raw pool, so "not connected yet" is a typed state rather than a nil
// dereference waiting to happen.
type Handle struct {
	mu   sync.RWMutex
	pool *pgxpool.Pool
}

func NewHandle() *Handle { return &Handle{} }

// Bind attaches a connected pool to the handle, marking it ready.
func (h *Handle) Bind(pool *pgxpool.Pool) {
	h.mu.Lock()
	h.pool = pool
	h.mu.Unlock()
}

// Acquire returns the bound pool or ErrStoreUnavailable.
func (h *Handle) Acquire() (*pgxpool.Pool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.pool == nil {
		return nil, ErrStoreUnavailable
	}
	return h.pool, nil
}

// Ready reports whether a pool has been bound.
func (h *Handle) Ready() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pool != nil
}

// Close closes the bound pool, if any, and returns the handle to not-ready.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pool != nil {
		h.pool.Close()
		h.pool = nil
	}
}
