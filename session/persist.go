package session

import (
	"context"

	"workmate/models"
)

// PersistentStore is the durable copy of the session, re-read at startup.
// Load returns (nil, nil) when nothing is persisted; a decode or
// verification failure is an error, which the Store downgrades to an empty
// session rather than propagating.
type PersistentStore interface {
	Save(ctx context.Context, id models.Identity) error
	Load(ctx context.Context) (*models.Identity, error)
	Clear(ctx context.Context) error
}
