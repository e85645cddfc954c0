// Package gamedata provides the species and move catalogs the spawner draws from.
package gamedata

import (
	"embed"
	"io/fs"
)

// dataFS embeds the default catalogs at build time.
//
//go:embed *.json
var dataFS embed.FS

// Embedded returns the built-in catalog filesystem.
func Embedded() fs.FS {
	return dataFS
}
