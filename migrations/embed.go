// Package migrations embeds the SQL migration files so they can be applied
// by the goose programmatic API at server startup and in tests.
package migrations

import "embed"

// FS holds the migration files for every supported dialect, one directory
// per dialect ("sqlite", "postgres"). Callers pick a directory with fs.Sub.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
