// Package template defines the engine-agnostic template contract used to wrap
// rendered component trees in document layouts. The gotemplate subpackage
// provides the pongo2-backed implementation.
package template
