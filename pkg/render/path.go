package render

import (
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/variables"
)

// RenderPath renders each segment of a slash-separated relative path
// independently. A segment that renders to nothing, to "." or "..", to
// something containing a separator, or to a literal "{{" is rejected.
func RenderPath(rel string, vars variables.VariableSet) (string, error) {
	segments := strings.Split(rel, "/")
	out := make([]string, len(segments))

	for i, seg := range segments {
		rendered, err := Render(seg, vars, rel)
		if err != nil {
			return "", err
		}
		if err := validateSegment(rendered, rel); err != nil {
			return "", err
		}
		out[i] = rendered
	}
	return strings.Join(out, "/"), nil
}

// StripTemplateSuffix removes a trailing .tmpl from the last segment of a file path
func StripTemplateSuffix(rel string) string {
	base := rel[strings.LastIndex(rel, "/")+1:]
	if len(base) > len(TemplateSuffix) && strings.HasSuffix(base, TemplateSuffix) {
		return strings.TrimSuffix(rel, TemplateSuffix)
	}
	return rel
}

func validateSegment(seg, rel string) error {
	var reason string
	switch {
	case seg == "":
		reason = "renders to an empty name"
	case seg == "." || seg == "..":
		reason = "renders to " + seg
	case strings.ContainsAny(seg, `/\`):
		reason = "renders to a name containing a path separator"
	case strings.ContainsRune(seg, 0):
		reason = "renders to a name containing a NUL byte"
	case strings.Contains(seg, openDelim):
		reason = "renders to a name containing " + openDelim
	default:
		return nil
	}
	return errors.Newf(errors.ErrInvalidPath, "path %s %s", rel, reason).
		WithDetail("path", rel).
		WithDetail("segment", seg)
}
