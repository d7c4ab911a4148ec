// Package postgres provides the PostgreSQL-backed implementation of the
// data storage interfaces defined in the internal/store package. It owns
// the SQL for the card_progress table and the mapping between domain
// records and database rows, including the NULL-to-zero-time convention
// for review timestamps.
package postgres
