// Package postgres implements the store interfaces using a PostgreSQL
// database accessed through database/sql with the pgx driver. Database
// errors are mapped to the store package's sentinel errors so callers never
// depend on driver details.
package postgres
