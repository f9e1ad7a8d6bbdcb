package database

import "context"

// Queryable contains the read operations the catalog needs. The catalog is
// read-only, so there is no write or transaction surface.
type Queryable interface {
	Select(ctx context.Context, dst interface{}, sqlizer sqlizer) error
}

// PGX adds pool-level liveness checking on top of Queryable.
type PGX interface {
	Queryable
	Ping(ctx context.Context) error
}

type sqlizer interface {
	ToSql() (sql string, args []interface{}, err error)
}
