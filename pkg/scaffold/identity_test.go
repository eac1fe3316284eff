package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentitySource(t *testing.T) {
	assert.Empty(t, Identity{}.source())
	assert.Equal(t, map[string]any{VarEmail: "ada@example.com"}, Identity{Email: "ada@example.com"}.source())
	assert.Equal(t, map[string]any{VarAuthor: "Ada", VarEmail: "ada@example.com"},
		Identity{Name: "Ada", Email: "ada@example.com"}.source())
}

func TestGitIdentity_NoGit(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	assert.Equal(t, Identity{}, GitIdentity())
}
