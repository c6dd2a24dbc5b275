// Package pages loads declarative page definitions (YAML or JSON) and composes
// them into component trees with a vocabulary renderer. The bundled pages
// cover the account flows: login, registration, settings, password reset and
// confirmation.
package pages
