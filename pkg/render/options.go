package render

import "strings"

// Options are the settings shared by every vocabulary renderer. Renderers
// hold a copy and never mutate it after construction.
type Options struct {
	// Errors translates field and form errors. Nil interpolates locally.
	Errors *ErrorTranslator
	// Theme supplies per-role class tokens.
	Theme Theme
	// Destinations validates external link targets. Nil uses
	// DefaultDestinationValidator.
	Destinations DestinationValidator
	// MethodPolicy decides whether non GET/POST verbs are downgraded.
	MethodPolicy MethodPolicy
	// MethodField and CSRFField name the hidden side-channel inputs.
	MethodField string
	CSRFField   string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline options.
func DefaultOptions() Options {
	return Options{
		MethodPolicy: MethodOverridePolicy,
		MethodField:  DefaultMethodField,
		CSRFField:    DefaultCSRFField,
	}
}

// Apply returns a copy of o with opts applied.
func (o Options) Apply(opts ...Option) Options {
	out := o
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	if strings.TrimSpace(out.MethodField) == "" {
		out.MethodField = DefaultMethodField
	}
	if strings.TrimSpace(out.CSRFField) == "" {
		out.CSRFField = DefaultCSRFField
	}
	return out
}

// Validator returns the configured destination validator or the default.
func (o Options) Validator() DestinationValidator {
	if o.Destinations != nil {
		return o.Destinations
	}
	return DefaultDestinationValidator()
}

// WithErrorTranslator binds the error translator.
func WithErrorTranslator(errors *ErrorTranslator) Option {
	return func(o *Options) {
		o.Errors = errors
	}
}

// WithTranslator binds translator for locale.
func WithTranslator(translator Translator, locale string, opts ...ErrorTranslatorOption) Option {
	return WithErrorTranslator(NewErrorTranslator(translator, locale, opts...))
}

// WithTheme overlays theme on the current tokens.
func WithTheme(theme Theme) Option {
	return func(o *Options) {
		o.Theme = o.Theme.Merge(theme)
	}
}

// WithDestinationValidator swaps the link destination check.
func WithDestinationValidator(validator DestinationValidator) Option {
	return func(o *Options) {
		o.Destinations = validator
	}
}

// WithMethodPolicy sets the form method policy.
func WithMethodPolicy(policy MethodPolicy) Option {
	return func(o *Options) {
		o.MethodPolicy = policy
	}
}

// WithHiddenFieldNames renames the method override and CSRF inputs. Empty
// names keep the current value.
func WithHiddenFieldNames(methodField, csrfField string) Option {
	return func(o *Options) {
		if name := strings.TrimSpace(methodField); name != "" {
			o.MethodField = name
		}
		if name := strings.TrimSpace(csrfField); name != "" {
			o.CSRFField = name
		}
	}
}
