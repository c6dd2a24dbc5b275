package timezones

import (
	"sort"
	"strings"
)

// SearchConfig bounds a search.
type SearchConfig struct {
	// DefaultLimit applies when the caller passes a zero limit.
	DefaultLimit int
	// MaxLimit caps any requested limit.
	MaxLimit int
	// AllOnEmpty returns the first zones when the query is blank instead of
	// nothing.
	AllOnEmpty bool
}

// DefaultSearchConfig returns the limits used by the handler.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{DefaultLimit: 50, MaxLimit: 200}
}

// Search matches query case-insensitively against zones. Prefix matches sort
// before substring matches; ties sort by name.
func Search(zones []string, query string, limit int, cfg SearchConfig) []string {
	limit = clampLimit(limit, cfg)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if !cfg.AllOnEmpty {
			return nil
		}
		if len(zones) > limit {
			zones = zones[:limit]
		}
		return append([]string{}, zones...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		// Match labels too, so "new york" finds America/New_York.
		if !strings.Contains(lower, q) && !strings.Contains(strings.ToLower(Label(zone)), q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lower, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}

func clampLimit(limit int, cfg SearchConfig) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = cfg.DefaultLimit
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		return cfg.MaxLimit
	}
	return limit
}
