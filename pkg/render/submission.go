package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formcore/pkg/model"
)

// Default names for the hidden side-channel fields.
const (
	DefaultMethodField = "_method"
	DefaultCSRFField   = "_csrf_token"
)

// HiddenField represents a hidden input emitted alongside the visible fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// MethodOverride constructs the hidden field that carries the real verb of
// a form downgraded to POST.
func MethodOverride(name, method string) HiddenField {
	return Hidden(name, method)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields normalises and sorts hidden fields for deterministic
// rendering. Empty names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	clean := make(map[string]string, len(fields))
	for name, value := range fields {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		if _, seen := clean[key]; !seen {
			names = append(names, key)
		}
		clean[key] = value
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{
			Name:  name,
			Value: clean[name],
		})
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// FormHiddenFields collects the hidden inputs a form wrapper emits: caller
// supplied fields, the method override and the CSRF token. The override and
// token win over caller fields with the same name.
func FormHiddenFields(opts model.FormOptions, method FormMethod, o Options) []HiddenField {
	var extras []HiddenField
	if method.Override != "" {
		extras = append(extras, MethodOverride(o.MethodField, method.Override))
	}
	if method.Method != "" && !method.IsGet() && strings.TrimSpace(opts.CSRFToken) != "" {
		extras = append(extras, CSRFToken(o.CSRFField, opts.CSRFToken))
	}
	return SortedHiddenFields(MergeHiddenFields(opts.Hidden, extras...))
}
