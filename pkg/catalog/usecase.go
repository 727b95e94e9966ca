package catalog

import "context"

// UseCase describes catalog behavior exposed to the HTTP layer and the ledger.
type UseCase interface {
	SeedIfEmpty(ctx context.Context, defaults []Event) (int, error)
	ListAll(ctx context.Context) ([]Event, error)
	GetByEventIDs(ctx context.Context, ids []string) ([]Event, error)
}

type service struct {
	repo Repository
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

// SeedIfEmpty inserts the default events in one batch when the catalog holds
// zero records and reports how many were inserted. Calling it again is a no-op,
// so a restart never duplicates the defaults.
func (s *service) SeedIfEmpty(ctx context.Context, defaults []Event) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := s.repo.InsertBatch(ctx, defaults); err != nil {
		return 0, err
	}
	return len(defaults), nil
}

func (s *service) ListAll(ctx context.Context) ([]Event, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) GetByEventIDs(ctx context.Context, ids []string) ([]Event, error) {
	if len(ids) == 0 {
		return []Event{}, nil
	}
	return s.repo.GetByEventIDs(ctx, ids)
}
