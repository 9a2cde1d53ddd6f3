package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for sequence counters.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// AllocateSequence increments and returns the named per-tenant counter in a
// single upsert, so allocation stays atomic even without an enclosing
// transaction. Counters start at 1.
func (r *PgxSequenceRepository) AllocateSequence(ctx context.Context, tenantID, name string) (int64, error) {
	query := `
		INSERT INTO sequences (tenant_id, name, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, name) DO UPDATE SET value = sequences.value + 1
		RETURNING value;
	`
	var value int64
	if err := r.db(ctx).QueryRow(ctx, query, tenantID, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to allocate sequence %s for tenant %s: %w", name, tenantID, err)
	}
	return value, nil
}
