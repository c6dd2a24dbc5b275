package render

import "errors"

var (
	// ErrInvalidDestination is returned by Link when an href fails the
	// destination check. Hosts are expected to fail the page render.
	ErrInvalidDestination = errors.New("render: invalid destination")
	// ErrUnknownVocabulary is returned when a registry lookup misses.
	ErrUnknownVocabulary = errors.New("render: unknown vocabulary")
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("render: translator not configured")
)

// IsInvalidDestination reports whether err carries ErrInvalidDestination.
func IsInvalidDestination(err error) bool {
	return errors.Is(err, ErrInvalidDestination)
}
