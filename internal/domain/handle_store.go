package domain

import "context"

// HandleStore durably persists the active handle set per user so a later
// cancel-all can reach gateway bookkeeping even after a process restart.
type HandleStore interface {
	SaveHandleSet(ctx context.Context, set *HandleSet) error
	GetHandleSet(ctx context.Context, userID string) (*HandleSet, error)
	ClearHandleSet(ctx context.Context, userID string) error
}
