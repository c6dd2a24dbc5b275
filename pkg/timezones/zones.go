package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formcore/pkg/model"
)

// SourceName is the option source name page definitions use in optionsFrom.
const SourceName = "timezones"

//go:embed data/zones.txt
var dataFS embed.FS

const defaultListPath = "data/zones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// Default returns a copy of the embedded zone list, sorted.
func Default() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultZones, defaultErr = Load(f)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

// Load reads one zone per line, skipping blanks, # comments and duplicates.
func Load(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 256)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: read list: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}

// Label renders a zone identifier for display: "America/New_York" becomes
// "America/New York".
func Label(zone string) string {
	return strings.ReplaceAll(zone, "_", " ")
}

// PickerOptions maps zones to Picker options keyed by the raw identifier.
func PickerOptions(zones []string) []model.Option {
	if len(zones) == 0 {
		return nil
	}
	out := make([]model.Option, 0, len(zones))
	for _, zone := range zones {
		out = append(out, model.Option{Label: Label(zone), Value: zone})
	}
	return out
}

// DefaultOptions returns the embedded list as Picker options. It satisfies
// pages.OptionSource.
func DefaultOptions() ([]model.Option, error) {
	zones, err := Default()
	if err != nil {
		return nil, err
	}
	return PickerOptions(zones), nil
}
