package scaffold

import (
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
)

// VarProjectType selects the built-in template when none is named
const VarProjectType = "project_type"

// Project types
const (
	TypeStandard    = "standard"
	TypeDataScience = "data_science"
	TypeWebAPI      = "web_api"
	TypeCLITool     = "cli_tool"
	TypeAutomation  = "automation"
)

// ProjectTypes lists the known project types
var ProjectTypes = []string{TypeStandard, TypeDataScience, TypeWebAPI, TypeCLITool, TypeAutomation}

var typeTemplates = map[string]string{
	TypeStandard:    "standard",
	TypeDataScience: "data-science",
	TypeWebAPI:      "web-api",
	TypeCLITool:     "cli-tool",
	TypeAutomation:  "automation",
}

// NormalizeProjectType lowercases t and treats "-" and spaces as "_",
// so "Web-API" and "web api" both mean web_api.
func NormalizeProjectType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	return strings.NewReplacer("-", "_", " ", "_").Replace(t)
}

// TemplateForType returns the built-in template a project type selects
func TemplateForType(projectType string) (string, error) {
	name, ok := typeTemplates[NormalizeProjectType(projectType)]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown project type %q (known: %s)",
			projectType, strings.Join(ProjectTypes, ", ")).
			WithDetail(VarProjectType, projectType)
	}
	return name, nil
}
