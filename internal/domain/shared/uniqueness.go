package shared

import (
	"context"

	"github.com/google/uuid"
)

// KeyExistsFunc reports whether any non-deleted row other than the one
// identified by excludePublicID already holds key. Implementations live in
// the repositories and must filter is_delete = false; scoped variants
// (e.g. per parent category) are produced by closing over the scope value.
// Pass uuid.Nil as excludePublicID on create paths.
type KeyExistsFunc func(ctx context.Context, key string, excludePublicID uuid.UUID) (bool, error)

// UniqueKeyGuard enforces uniqueness of a derived key among non-deleted rows.
// The same row's slug may be reclaimed after a soft delete, and updates
// exclude the row being updated by its own identifier rather than by key
// equality. The durable invariant is a partial unique index at the storage
// layer; this guard only gives callers a friendly conflict error ahead of it.
type UniqueKeyGuard struct {
	// Derive maps a display name to the stored key. Nil means the name is
	// stored verbatim (email, contact).
	Derive func(name string) string
	// Exists checks the key against non-deleted rows.
	Exists KeyExistsFunc
	// Conflict is returned when the key is already taken.
	Conflict *DomainError
}

// Reserve derives the key for name and verifies no other non-deleted row
// holds it. Returns the derived key on success and Conflict when taken.
func (g UniqueKeyGuard) Reserve(ctx context.Context, name string, excludePublicID uuid.UUID) (string, error) {
	key := name
	if g.Derive != nil {
		key = g.Derive(name)
	}

	taken, err := g.Exists(ctx, key, excludePublicID)
	if err != nil {
		return "", err
	}
	if taken {
		conflict := g.Conflict
		if conflict == nil {
			conflict = ErrAlreadyExists
		}
		return "", conflict
	}

	return key, nil
}
