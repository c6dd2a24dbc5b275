// Package formcore renders form components and account pages into two markup
// vocabularies: HTML for the web and SwiftUI-style tags for native clients.
//
// Most callers start with GeneratePage or NewOrchestrator; the pkg/ packages
// expose the building blocks (markup trees, the vocabulary renderers, the page
// store and the message catalog) for finer control.
package formcore
