// Package migrations holds the goose schema migrations applied to every
// tenant database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
