package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme roles. Renderers look up the class applied to each structural part
// of a component by role.
const (
	RoleForm       = "form"
	RoleField      = "field"
	RoleLabel      = "label"
	RoleInput      = "input"
	RoleError      = "error"
	RoleActions    = "actions"
	RoleButton     = "button"
	RoleLink       = "link"
	RoleHeader     = "header"
	RoleTitle      = "title"
	RoleSubtitle   = "subtitle"
	RoleFlashInfo  = "flash.info"
	RoleFlashError = "flash.error"
)

// Theme is the resolved token set for one vocabulary. Tokens map a role to
// the class list applied to it.
type Theme struct {
	Name    string
	Variant string
	Tokens  map[string]string
}

// Token returns the token for role, or an empty string.
func (t Theme) Token(role string) string {
	if t.Tokens == nil {
		return ""
	}
	return strings.TrimSpace(t.Tokens[role])
}

// Merge returns a copy of t overlaid with other. Empty names keep t's value;
// token keys from other win.
func (t Theme) Merge(other Theme) Theme {
	out := Theme{
		Name:    t.Name,
		Variant: t.Variant,
	}
	if other.Name != "" {
		out.Name = other.Name
	}
	if other.Variant != "" {
		out.Variant = other.Variant
	}
	if len(t.Tokens)+len(other.Tokens) > 0 {
		out.Tokens = make(map[string]string, len(t.Tokens)+len(other.Tokens))
		for k, v := range t.Tokens {
			out.Tokens[k] = v
		}
		for k, v := range other.Tokens {
			out.Tokens[k] = v
		}
	}
	return out
}

// ThemeFromSelection extracts the tokens of a go-theme selection for a
// vocabulary. Manifest tokens are applied first, then the selected variant's.
// Keys prefixed with "<vocabulary>." are scoped to that vocabulary and win
// over unprefixed keys; keys scoped to other vocabularies are ignored.
func ThemeFromSelection(sel *theme.Selection, vocabulary string) Theme {
	if sel == nil {
		return Theme{}
	}
	out := Theme{Name: sel.Theme, Variant: sel.Variant}
	if sel.Manifest == nil {
		return out
	}

	layers := []map[string]string{sel.Manifest.Tokens}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		layers = append(layers, variant.Tokens)
	}

	prefix := strings.ToLower(strings.TrimSpace(vocabulary)) + "."
	plain := map[string]string{}
	scoped := map[string]string{}
	for _, layer := range layers {
		for key, value := range layer {
			switch {
			case prefix != "." && strings.HasPrefix(key, prefix):
				scoped[strings.TrimPrefix(key, prefix)] = value
			case strings.Contains(key, ".") && !isRoleKey(key):
				// scoped to another vocabulary
			default:
				plain[key] = value
			}
		}
	}
	if len(plain)+len(scoped) == 0 {
		return out
	}
	out.Tokens = make(map[string]string, len(plain)+len(scoped))
	for k, v := range plain {
		out.Tokens[k] = v
	}
	for k, v := range scoped {
		out.Tokens[k] = v
	}
	return out
}

func isRoleKey(key string) bool {
	return key == RoleFlashInfo || key == RoleFlashError
}

// SelectTheme asks selector for name/variant and converts the selection for
// vocabulary. A nil selector yields an empty Theme.
func SelectTheme(selector theme.ThemeSelector, name, variant, vocabulary string) (Theme, error) {
	if selector == nil {
		return Theme{}, nil
	}
	sel, err := selector.Select(name, variant)
	if err != nil {
		return Theme{}, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	return ThemeFromSelection(sel, vocabulary), nil
}

// ClassNames joins the non-empty class lists.
func ClassNames(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
