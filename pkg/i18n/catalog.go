// Package i18n provides a go-i18n backed message catalog for translating
// validation errors and page copy.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcore/pkg/render"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// ErrMissingMessage wraps lookups that found no message in the requested
// locale or the default language.
var ErrMissingMessage = errors.New("i18n: message not found")

// LocalesFS exposes the bundled message files.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return embeddedLocales
	}
	return sub
}

// Option configures a Catalog.
type Option func(*config)

type config struct {
	defaultLanguage language.Tag
	sources         []fs.FS
	skipEmbedded    bool
}

// WithDefaultLanguage sets the fallback language. Defaults to English.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(cfg *config) {
		cfg.defaultLanguage = tag
	}
}

// WithMessagesFS loads additional message files after the bundled ones;
// later files override earlier messages with the same id.
func WithMessagesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.sources = append(cfg.sources, files)
		}
	}
}

// WithoutEmbeddedMessages skips the bundled message files.
func WithoutEmbeddedMessages() Option {
	return func(cfg *config) {
		cfg.skipEmbedded = true
	}
}

// Catalog implements render.Translator over a go-i18n bundle. It is safe for
// concurrent use once constructed.
type Catalog struct {
	bundle  *goi18n.Bundle
	matcher language.Matcher
	tags    []language.Tag

	mu         sync.RWMutex
	localizers map[string]*goi18n.Localizer
}

var _ render.Translator = (*Catalog)(nil)

// New builds a Catalog from the bundled messages plus any WithMessagesFS
// sources. Files are named "<locale>.yaml" (or .yml/.json).
func New(options ...Option) (*Catalog, error) {
	cfg := config{defaultLanguage: language.English}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	bundle := goi18n.NewBundle(cfg.defaultLanguage)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	sources := cfg.sources
	if !cfg.skipEmbedded {
		sources = append([]fs.FS{LocalesFS()}, sources...)
	}
	for _, source := range sources {
		if err := loadMessages(bundle, source); err != nil {
			return nil, err
		}
	}

	tags := bundle.LanguageTags()
	if len(tags) == 0 {
		tags = []language.Tag{cfg.defaultLanguage}
	}

	return &Catalog{
		bundle:     bundle,
		matcher:    language.NewMatcher(tags),
		tags:       tags,
		localizers: make(map[string]*goi18n.Localizer),
	}, nil
}

func loadMessages(bundle *goi18n.Bundle, files fs.FS) error {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return fmt.Errorf("i18n: read messages dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return fmt.Errorf("i18n: parse %s: %w", name, err)
		}
	}
	return nil
}

// Translate resolves key for locale. The first argument, when it is a
// map[string]any, supplies template data; its "count" entry selects the
// plural form.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", render.ErrMissingTranslator
	}

	cfg := &goi18n.LocalizeConfig{MessageID: key}
	if len(args) > 0 {
		if data, ok := args[0].(map[string]any); ok && len(data) > 0 {
			cfg.TemplateData = data
			if count, ok := data["count"]; ok {
				cfg.PluralCount = count
			}
		}
	}

	text, err := c.localizer(locale).Localize(cfg)
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %q (%s)", ErrMissingMessage, key, locale)
		}
		return "", fmt.Errorf("i18n: localize %q: %w", key, err)
	}
	return text, nil
}

// Match returns the best supported locale for the given preferences. Each
// preference may be a single tag or a full Accept-Language header value.
func (c *Catalog) Match(preferences ...string) string {
	var wanted []language.Tag
	for _, pref := range preferences {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		wanted = append(wanted, parsed...)
	}
	tag, _, _ := c.matcher.Match(wanted...)
	base, _ := tag.Base()
	return base.String()
}

// Locales lists the languages that have messages loaded.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.tags))
	for _, tag := range c.tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) localizer(locale string) *goi18n.Localizer {
	locale = strings.TrimSpace(locale)

	c.mu.RLock()
	localizer, ok := c.localizers[locale]
	c.mu.RUnlock()
	if ok {
		return localizer
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if localizer, ok := c.localizers[locale]; ok {
		return localizer
	}
	localizer = goi18n.NewLocalizer(c.bundle, locale)
	c.localizers[locale] = localizer
	return localizer
}
