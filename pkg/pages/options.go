package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formcore/pkg/model"
)

// ErrUnknownOptionSource is returned when a field names an option source that
// is not registered and carries no static options to fall back to.
var ErrUnknownOptionSource = errors.New("pages: unknown option source")

// OptionSource supplies Picker options at render time.
type OptionSource func() ([]model.Option, error)

// OptionSources maps source names to OptionSource implementations.
type OptionSources map[string]OptionSource

// Resolve returns the options for field. A registered source replaces the
// static options; an unregistered one keeps them.
func (s OptionSources) Resolve(field FieldConfig) ([]model.Option, error) {
	name := strings.TrimSpace(field.OptionsFrom)
	if name == "" {
		return cloneOptions(field.Options), nil
	}

	source, ok := s[name]
	if !ok || source == nil {
		if len(field.Options) > 0 {
			return cloneOptions(field.Options), nil
		}
		return nil, fmt.Errorf("%w %q for field %q", ErrUnknownOptionSource, name, field.Name)
	}

	options, err := source()
	if err != nil {
		return nil, fmt.Errorf("pages: option source %q: %w", name, err)
	}
	return cloneOptions(options), nil
}

func cloneOptions(options []model.Option) []model.Option {
	if len(options) == 0 {
		return nil
	}
	return append([]model.Option(nil), options...)
}
