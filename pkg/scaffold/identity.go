package scaffold

import (
	"os/exec"
	"strings"
)

// Identity is the user's name and email as recorded by git
type Identity struct {
	Name  string
	Email string
}

// GitIdentity reads user.name and user.email from git config. Missing keys,
// or git not being installed, leave the fields empty.
func GitIdentity() Identity {
	return Identity{
		Name:  gitConfig("user.name"),
		Email: gitConfig("user.email"),
	}
}

func gitConfig(key string) string {
	output, err := exec.Command("git", "config", "--get", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// source turns the identity into the author and email variables, skipping
// empty fields so lower layers still apply
func (id Identity) source() map[string]any {
	values := make(map[string]any)
	if id.Name != "" {
		values[VarAuthor] = id.Name
	}
	if id.Email != "" {
		values[VarEmail] = id.Email
	}
	return values
}
