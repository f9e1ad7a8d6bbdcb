package database

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/xlab/closer"
)

// pgxUtil is a thin wrapper over a pgx pool that accepts squirrel builders.
type pgxUtil struct {
	pool *pgxpool.Pool
}

// NewPGX connects the pool and binds its shutdown to the process closer.
func NewPGX(ctx context.Context, connString string) (PGX, error) {
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		return nil, err
	}

	closer.Bind(pool.Close)

	return &pgxUtil{pool: pool}, nil
}

// Select scans multiple rows into a slice. Returns nil when there are no rows.
func (p *pgxUtil) Select(ctx context.Context, dst interface{}, sqlizer sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return pgxscan.Select(ctx, p.pool, dst, query, args...)
}

// Ping checks the connection to the database.
func (p *pgxUtil) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
