package activity

import (
	"context"

	domain "frontdesk/internal/domain/activity"
)

// ListFilter narrows activity queries.
type ListFilter struct {
	ActorEmail string // exact match, empty for all
	Action     string // exact match, empty for all
	Limit      int    // 0 for no limit
}

// Store persists front-desk activity entries.
type Store interface {
	Save(ctx context.Context, value domain.Entry) error
	List(ctx context.Context, filter ListFilter) ([]domain.Entry, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}
