// Package postgres implements the store interfaces using a PostgreSQL
// database accessed through database/sql with the pgx driver. Upserts use
// INSERT ... ON CONFLICT so progress and status rows accumulate without a
// separate existence check at the SQL level.
package postgres
