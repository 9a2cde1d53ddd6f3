package repositories

import "context"

// TxManager makes multi-document writes (ledger + record + sequence counter)
// appear atomic when the storage backend supports it.
//
// When atomic groups are unsupported, WithOptionalAtomicGroup runs fn
// directly with no grouping. Callers must therefore design fn so that each
// individual write is independently safe (conditional updates, idempotent
// creates) and must compensate partial writes themselves, since there is no
// rollback guarantee in this mode.
type TxManager interface {
	// SupportsAtomicGroups reports the backend's transactional capability,
	// probed once at startup.
	SupportsAtomicGroups() bool

	// WithOptionalAtomicGroup starts a group if supported, runs fn, commits
	// on success and aborts on error, always releasing the group handle.
	// The context passed to fn carries the group; repositories route their
	// writes through it.
	WithOptionalAtomicGroup(ctx context.Context, fn func(ctx context.Context) error) error
}
