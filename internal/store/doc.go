// Package store defines the persistence interfaces the services depend on,
// together with the shared error taxonomy and transaction helpers. Concrete
// implementations live under internal/platform/postgres.
package store
