package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formcore/pkg/model"
)

// PlaceholderDestination is the neutral target of fallback links.
const PlaceholderDestination = "#"

// LinkShape is the navigation markup variant selected for a link.
type LinkShape int

const (
	// LinkNavigate is in-app navigation to Link.Navigate.
	LinkNavigate LinkShape = iota
	// LinkHref is external navigation to a validated Link.Href.
	LinkHref
	// LinkFallback is in-app navigation to PlaceholderDestination.
	LinkFallback
)

func (s LinkShape) String() string {
	switch s {
	case LinkNavigate:
		return "navigate"
	case LinkHref:
		return "href"
	default:
		return "fallback"
	}
}

// ResolvedLink is the outcome of link target selection.
type ResolvedLink struct {
	Shape       LinkShape
	Destination string
	Method      string
	Replace     bool
}

// IsGet reports whether an href link uses the default GET method.
func (l ResolvedLink) IsGet() bool {
	return strings.EqualFold(l.Method, "get")
}

// ResolveLink picks exactly one shape with precedence navigate > href >
// fallback. An href that fails validation returns ErrInvalidDestination.
func ResolveLink(link model.Link, validator DestinationValidator) (ResolvedLink, error) {
	method := strings.TrimSpace(link.Method)
	if method == "" {
		method = "get"
	}

	if navigate := strings.TrimSpace(link.Navigate); navigate != "" {
		return ResolvedLink{Shape: LinkNavigate, Destination: navigate, Method: method, Replace: link.Replace}, nil
	}

	if href := strings.TrimSpace(link.Href); href != "" && href != PlaceholderDestination {
		if validator == nil {
			validator = DefaultDestinationValidator()
		}
		if !validator.ValidDestination(href) {
			return ResolvedLink{}, fmt.Errorf("%w: %q", ErrInvalidDestination, href)
		}
		return ResolvedLink{Shape: LinkHref, Destination: href, Method: method}, nil
	}

	return ResolvedLink{Shape: LinkFallback, Destination: PlaceholderDestination, Method: method}, nil
}

// DestinationValidator decides whether an external href is safe to emit.
type DestinationValidator interface {
	ValidDestination(destination string) bool
}

// DestinationValidatorFunc adapts a function into a DestinationValidator.
type DestinationValidatorFunc func(string) bool

// ValidDestination calls the underlying function.
func (fn DestinationValidatorFunc) ValidDestination(destination string) bool {
	return fn(destination)
}

// SafeURLSchemes are the absolute URL schemes accepted by default.
var SafeURLSchemes = []string{
	"http", "https", "ftp", "ftps", "mailto", "news", "irc", "gopher",
	"nntp", "feed", "telnet", "mms", "rtsp", "svn", "tel", "fax", "xmpp",
}

type urlPolicyValidator struct {
	policy *bluemonday.Policy
}

// NewURLPolicyValidator builds a validator backed by a bluemonday URL policy:
// relative URLs are accepted, absolute URLs must be parseable and use one of
// schemes (SafeURLSchemes when empty).
func NewURLPolicyValidator(schemes ...string) DestinationValidator {
	if len(schemes) == 0 {
		schemes = SafeURLSchemes
	}
	policy := bluemonday.NewPolicy()
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireParseableURLs(true)
	policy.AllowRelativeURLs(true)
	policy.AllowURLSchemes(schemes...)
	return urlPolicyValidator{policy: policy}
}

func (v urlPolicyValidator) ValidDestination(destination string) bool {
	if strings.TrimSpace(destination) == "" {
		return false
	}
	probe := `<a href="` + html.EscapeString(destination) + `">x</a>`
	return strings.Contains(v.policy.Sanitize(probe), "href=")
}

var (
	defaultValidatorOnce sync.Once
	defaultValidator     DestinationValidator
)

// DefaultDestinationValidator returns the shared SafeURLSchemes validator.
func DefaultDestinationValidator() DestinationValidator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewURLPolicyValidator()
	})
	return defaultValidator
}
