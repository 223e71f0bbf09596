// Package migrations embeds the schema for the SQL stores.
package migrations

import "embed"

// Postgres holds the postgres schema under "postgres".
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the sqlite schema under "sqlite".
//
//go:embed sqlite/*.sql
var SQLite embed.FS
