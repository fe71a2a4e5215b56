// Package migrations embeds the SQLite schema migrations for the roster store.
package migrations

import "embed"

// FS holds the roster snapshot schema migrations.
//
//go:embed *.sql
var FS embed.FS
