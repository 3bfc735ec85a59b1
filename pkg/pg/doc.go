// Package pg opens a pgx/v5 connection pool with retry. The resulting
// *pgxpool.Pool backs the Postgres-based account store in svc/auth.
package pg
