// Package migrations embeds the goose migration files so the migrate
// binary can run them without a copy of the source tree on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
