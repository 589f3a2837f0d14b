// Package db holds the edge's schema migrations.
package db

import "embed"

// Migrations holds the goose SQL files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
