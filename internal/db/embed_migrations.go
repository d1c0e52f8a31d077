package db

import "embed"

// MigrationFS embeds SQL migration files from internal/db/migrations.
// internal/db/migrate applies them; cmd/migrate is the entry point.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
