package render

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-formcore/pkg/model"
)

// Translator resolves a message key for a locale. Implementations receive the
// ErrorMessage placeholders as the first argument (map[string]any) and are
// responsible for pluralisation.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls the underlying function.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler produces the text used when the translator fails
// or returns an empty string. err is ErrMissingTranslator when no translator
// is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrorTranslator binds a Translator to a locale and turns ErrorMessages into
// display text. A nil *ErrorTranslator interpolates locally.
type ErrorTranslator struct {
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
}

// ErrorTranslatorOption customises an ErrorTranslator.
type ErrorTranslatorOption func(*ErrorTranslator)

// WithMissingTranslationHandler overrides the fallback used on lookup misses.
func WithMissingTranslationHandler(handler MissingTranslationHandler) ErrorTranslatorOption {
	return func(e *ErrorTranslator) {
		e.onMissing = handler
	}
}

// NewErrorTranslator returns an ErrorTranslator for locale. translator may be
// nil.
func NewErrorTranslator(translator Translator, locale string, opts ...ErrorTranslatorOption) *ErrorTranslator {
	e := &ErrorTranslator{
		translator: translator,
		locale:     strings.TrimSpace(locale),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Locale returns the bound locale.
func (e *ErrorTranslator) Locale() string {
	if e == nil {
		return ""
	}
	return e.locale
}

// Translate converts one message into display text.
func (e *ErrorTranslator) Translate(msg model.ErrorMessage) string {
	key := strings.TrimSpace(msg.Template)
	if key == "" {
		return ""
	}

	args := []any{msg.Placeholders}
	if e == nil || e.translator == nil {
		if e != nil && e.onMissing != nil {
			return e.onMissing(e.locale, key, args, ErrMissingTranslator)
		}
		return Interpolate(key, msg.Placeholders)
	}

	text, err := e.translator.Translate(e.locale, key, msg.Placeholders)
	if err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	if e.onMissing != nil {
		return e.onMissing(e.locale, key, args, err)
	}
	return Interpolate(key, msg.Placeholders)
}

// TranslateMessages translates messages preserving order.
func (e *ErrorTranslator) TranslateMessages(messages []model.ErrorMessage) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		out = append(out, e.Translate(msg))
	}
	return out
}

// TranslateAll translates the errors reported on field, preserving order.
func (e *ErrorTranslator) TranslateAll(errs []model.FieldError, field string) []string {
	return e.TranslateMessages(model.ErrorsFor(errs, field))
}

var placeholderPattern = regexp.MustCompile(`%\{(\w+)\}`)

// Interpolate substitutes %{name} references with placeholder values.
// Unknown references are left untouched.
func Interpolate(template string, placeholders map[string]any) string {
	if len(placeholders) == 0 || !strings.Contains(template, "%{") {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		value, ok := placeholders[name]
		if !ok {
			return match
		}
		return model.FormatValue(value)
	})
}
