// Package migrations holds the ordered Postgres schema files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
