// Package catalog holds the built-in boilerplates embedded in the binary.
package catalog

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/scaffold/pkg/locator"
)

//go:embed all:boilerplates
var content embed.FS

// RootName is the display name of the built-in root
const RootName = "built-in catalog"

// FS returns the built-in boilerplates, one directory per template
func FS() fs.FS {
	sub, err := fs.Sub(content, "boilerplates")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// Root returns the built-in catalog as a search root
func Root() locator.Root {
	return locator.Root{Name: RootName, FS: FS(), BuiltIn: true}
}
