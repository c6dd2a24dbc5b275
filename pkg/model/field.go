package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field is the semantic description of one form input, independent of the
// vocabulary it renders in.
type Field struct {
	Kind     Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	ID       string            `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string            `json:"name" yaml:"name"`
	Label    string            `json:"label,omitempty" yaml:"label,omitempty"`
	Value    any               `json:"value,omitempty" yaml:"value,omitempty"`
	Prompt   string            `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Errors   []ErrorMessage    `json:"errors,omitempty" yaml:"errors,omitempty"`
	Options  []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Bounds   *Bounds           `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	ReadOnly bool              `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Required bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Option is one (display, value) pair of a choice widget.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// Bounds carries optional numeric limits. A nil pointer means the bound is
// absent and must not be emitted.
type Bounds struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// NewBounds builds bounds with both limits set.
func NewBounds(minValue, maxValue float64) *Bounds {
	return &Bounds{Min: &minValue, Max: &maxValue}
}

// ErrorMessage is an untranslated validation message. Placeholders are
// referenced from the template as %{name}.
type ErrorMessage struct {
	Template     string         `json:"template" yaml:"template"`
	Placeholders map[string]any `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`
}

// Message is shorthand for an ErrorMessage without placeholders.
func Message(template string) ErrorMessage {
	return ErrorMessage{Template: template}
}

// FieldError ties an ErrorMessage to the field key it was reported on.
type FieldError struct {
	Field   string       `json:"field" yaml:"field"`
	Message ErrorMessage `json:"message" yaml:"message"`
}

// ErrorsFor returns the messages reported on key, preserving order.
func ErrorsFor(errs []FieldError, key string) []ErrorMessage {
	key = strings.TrimSpace(key)
	var out []ErrorMessage
	for _, entry := range errs {
		if strings.TrimSpace(entry.Field) == key {
			out = append(out, entry.Message)
		}
	}
	return out
}

// FormatValue converts a field or option value into its attribute form.
// Dates use ISO-8601, slices are comma-joined, nil is empty.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.DateOnly)
	case []string:
		return strings.Join(v, ",")
	case []time.Time:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ",")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Truthy interprets a toggle value.
func Truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
	}
	return false
}
