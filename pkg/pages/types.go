package pages

import (
	"sort"

	"github.com/goliatone/go-formcore/pkg/model"
)

// Store keeps the parsed page definitions. It is safe for concurrent readers
// when treated as immutable after construction.
type Store struct {
	pages map[string]Page
}

// Page describes one screen: a header, its forms and trailing links.
type Page struct {
	ID       string
	Source   string
	Title    string
	Subtitle string
	// Actions are links rendered in the header action slot.
	Actions []LinkConfig
	Forms   []FormConfig
	Links   []LinkConfig
}

// FormConfig describes one form on a page. ID defaults to Name and keys the
// per-request form state.
type FormConfig struct {
	ID        string            `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	Title     string            `json:"title,omitempty" yaml:"title,omitempty"`
	Action    string            `json:"action,omitempty" yaml:"action,omitempty"`
	Method    string            `json:"method,omitempty" yaml:"method,omitempty"`
	Multipart bool              `json:"multipart,omitempty" yaml:"multipart,omitempty"`
	Hidden    map[string]string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Fields    []FieldConfig     `json:"fields" yaml:"fields"`
	Actions   []ActionConfig    `json:"actions" yaml:"actions"`
}

// FieldConfig describes one input. Kind accepts canonical kind names and the
// web aliases understood by model.ParseKind.
type FieldConfig struct {
	Name     string         `json:"name" yaml:"name"`
	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Kind     string         `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Prompt   string         `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Required bool           `json:"required,omitempty" yaml:"required,omitempty"`
	ReadOnly bool           `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Options  []model.Option `json:"options,omitempty" yaml:"options,omitempty"`
	// OptionsFrom names an OptionSource that replaces Options when the
	// builder has one registered under that name.
	OptionsFrom string            `json:"optionsFrom,omitempty" yaml:"optionsFrom,omitempty"`
	Min         *float64          `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64          `json:"max,omitempty" yaml:"max,omitempty"`
	Attrs       map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// ActionConfig serialises a button rendered in the form action row.
type ActionConfig struct {
	Type  string            `json:"type,omitempty" yaml:"type,omitempty"`
	Label string            `json:"label" yaml:"label"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// LinkConfig serialises a navigation link.
type LinkConfig struct {
	Label    string            `json:"label" yaml:"label"`
	Navigate string            `json:"navigate,omitempty" yaml:"navigate,omitempty"`
	Href     string            `json:"href,omitempty" yaml:"href,omitempty"`
	Method   string            `json:"method,omitempty" yaml:"method,omitempty"`
	Replace  bool              `json:"replace,omitempty" yaml:"replace,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Page returns the definition for id.
func (s *Store) Page(id string) (Page, bool) {
	if s == nil {
		return Page{}, false
	}
	page, ok := s.pages[id]
	return page, ok
}

// IDs returns the sorted page ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.pages))
	for id := range s.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any pages.
func (s *Store) Empty() bool {
	return s == nil || len(s.pages) == 0
}
