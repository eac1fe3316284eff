package locator_test

import (
	"io/fs"

	"github.com/arthur-debert/scaffold/pkg/locator"
)

func readFile(desc *locator.Descriptor, name string) (string, error) {
	data, err := fs.ReadFile(desc.FS, name)
	return string(data), err
}
