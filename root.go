// Package bodycomp exposes repository-level assets shared by commands,
// currently the embedded database migrations applied by `bodycomp migrate`.
package bodycomp

import "embed"

// Migrations holds the goose SQL migrations for the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
