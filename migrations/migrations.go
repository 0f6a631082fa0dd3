// Package migrations embeds the schema migrations applied at database start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
