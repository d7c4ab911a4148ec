// Package migrations carries the SQL schema migrations compiled into the
// binary. Both the server's -migrate commands and the database test harness
// apply the same embedded files, so there is no on-disk migrations directory
// to locate at runtime.
package migrations

import "embed"

// TableName is the table goose records applied versions in.
const TableName = "schema_migrations"

// FS holds the embedded migration files. Pass it to goose.SetBaseFS and use
// "." as the migrations directory.
//
//go:embed *.sql
var FS embed.FS
