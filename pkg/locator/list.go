package locator

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/manifest"
)

// Listing is a template visible in some root
type Listing struct {
	Name        string
	Root        string
	BuiltIn     bool
	Description string

	// Shadowed is set when an earlier root holds a template of the same name
	Shadowed bool

	// Err is set when the template's manifest cannot be read
	Err error
}

// List returns every template in roots, in precedence order. Hidden
// directories are not templates.
func List(roots []Root) []Listing {
	var out []Listing
	seen := make(map[string]bool)

	for _, root := range roots {
		entries, err := fs.ReadDir(root.FS, ".")
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			if info, err := fs.Stat(root.FS, name); err != nil || !info.IsDir() {
				continue
			}

			item := Listing{
				Name:     name,
				Root:     root.Name,
				BuiltIn:  root.BuiltIn,
				Shadowed: seen[name],
			}
			if sub, err := fs.Sub(root.FS, name); err == nil {
				m, err := manifest.Load(sub)
				if err != nil {
					item.Err = err
				} else {
					item.Description = m.Description
				}
			}
			seen[name] = true
			out = append(out, item)
		}
	}
	return out
}
