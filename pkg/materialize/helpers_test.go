package materialize_test

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/stretchr/testify/require"
)

const templateName = "tpl"

// descriptor locates a template built from files, keyed by template-relative path
func descriptor(t *testing.T, files fstest.MapFS) *locator.Descriptor {
	t.Helper()

	root := fstest.MapFS{}
	for name, file := range files {
		root[templateName+"/"+name] = file
	}
	desc, err := locator.Locate(templateName, []locator.Root{{Name: "test", FS: root}})
	require.NoError(t, err)
	return desc
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0644}
}

func vars(t *testing.T, values map[string]any) variables.VariableSet {
	t.Helper()

	set, err := variables.NewVariableSet(values)
	require.NoError(t, err)
	return set
}

func fixedID() string { return "test" }
