// Package model defines the semantic descriptors renderers consume: field
// descriptors with a closed widget Kind, translated-later error messages,
// link/button/header/flash descriptors and the form source the form wrapper
// reads its id from. Descriptors are built fresh per render by the upstream
// form-state collaborator (see FormState) and are never mutated by renderers.
package model
