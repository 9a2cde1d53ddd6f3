package repositories

import "context"

// SequenceRepositoryFacade allocates per-tenant monotonic sequence numbers
// (auto-incrementing voucher numbers). Allocation must be a single atomic
// statement so it stays safe even without an enclosing atomic group; under
// concurrent creation without grouping, a duplicate number is caught post
// hoc by the store's uniqueness constraint and surfaced as a conflict.
type SequenceRepositoryFacade interface {
	AllocateSequence(ctx context.Context, tenantID, name string) (int64, error)
}
