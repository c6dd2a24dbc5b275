package model

import "strings"

// FormSource is the upstream form object the form wrapper reads defaults from.
type FormSource interface {
	FormID() string
	FormName() string
}

// FormOptions are the per-render form wrapper settings. ID overrides the
// source id when set.
type FormOptions struct {
	ID        string            `json:"id,omitempty" yaml:"id,omitempty"`
	Action    string            `json:"action,omitempty" yaml:"action,omitempty"`
	Method    string            `json:"method,omitempty" yaml:"method,omitempty"`
	Multipart bool              `json:"multipart,omitempty" yaml:"multipart,omitempty"`
	CSRFToken string            `json:"-" yaml:"-"`
	Hidden    map[string]string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// FormState is a minimal form-state adapter: values and errors keyed by field
// name, scoped under the form name the way request params are nested
// (`user[email]`).
type FormState struct {
	ID     string         `json:"id,omitempty"`
	Name   string         `json:"name,omitempty"`
	Values map[string]any `json:"values,omitempty"`
	Errors []FieldError   `json:"errors,omitempty"`
}

var _ FormSource = FormState{}

// FormID implements FormSource; it falls back to the form name.
func (s FormState) FormID() string {
	if id := strings.TrimSpace(s.ID); id != "" {
		return id
	}
	return strings.TrimSpace(s.Name)
}

// FormName implements FormSource.
func (s FormState) FormName() string {
	return strings.TrimSpace(s.Name)
}

// Field derives a descriptor for name. The id and input name are scoped by
// the form name when present.
func (s FormState) Field(name string, kind Kind, label string) Field {
	name = strings.TrimSpace(name)
	field := Field{
		Kind:   kind,
		ID:     s.inputID(name),
		Name:   s.inputName(name),
		Label:  label,
		Errors: ErrorsFor(s.Errors, name),
	}
	if s.Values != nil {
		field.Value = s.Values[name]
	}
	return field
}

// HasErrors reports whether any error was recorded.
func (s FormState) HasErrors() bool {
	return len(s.Errors) > 0
}

func (s FormState) inputID(name string) string {
	form := s.FormName()
	if form == "" {
		return name
	}
	return form + "_" + name
}

func (s FormState) inputName(name string) string {
	form := s.FormName()
	if form == "" {
		return name
	}
	return form + "[" + name + "]"
}

// Link selects between in-app navigation, an external href, or neither.
type Link struct {
	Navigate  string            `json:"navigate,omitempty" yaml:"navigate,omitempty"`
	Href      string            `json:"href,omitempty" yaml:"href,omitempty"`
	Method    string            `json:"method,omitempty" yaml:"method,omitempty"`
	Replace   bool              `json:"replace,omitempty" yaml:"replace,omitempty"`
	CSRFToken string            `json:"-" yaml:"-"`
	Attrs     map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// ButtonSubmit is the only button type bound to the enclosing form.
const ButtonSubmit = "submit"

// Button describes an action control.
type Button struct {
	Type  string            `json:"type,omitempty" yaml:"type,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// IsSubmit reports whether the button submits the enclosing form.
func (b Button) IsSubmit() bool {
	return strings.EqualFold(strings.TrimSpace(b.Type), ButtonSubmit)
}

// Header is a page/section title block.
type Header struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

// Flash kinds.
const (
	FlashInfo  = "info"
	FlashError = "error"
)

// Flash is a one-off notice rendered above page content.
type Flash struct {
	Kind    string `json:"kind" yaml:"kind"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Message string `json:"message" yaml:"message"`
}
