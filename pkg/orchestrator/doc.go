// Package orchestrator wires the page store → builder → vocabulary renderer →
// layout pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
