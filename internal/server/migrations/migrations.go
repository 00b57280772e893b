// Package migrations embeds the bootstrap schema for every supported dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
