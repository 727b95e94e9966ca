package catalog

import "context"

// Repository abstracts event persistence from the domain layer.
type Repository interface {
	Count(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, events []Event) error
	ListAll(ctx context.Context) ([]Event, error)
	// GetByEventIDs resolves external ids to full events. Ids with no matching
	// record are simply absent from the result, in stable catalog order.
	GetByEventIDs(ctx context.Context, ids []string) ([]Event, error)
}
