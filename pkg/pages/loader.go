package pages

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcore/pkg/model"
)

// LoadFS walks fsys and parses JSON/YAML page files. When fsys is nil or no
// page files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{pages: make(map[string]Page)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPageFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("pages: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for pageID, raw := range doc.Pages {
			id := strings.TrimSpace(pageID)
			if id == "" {
				return fmt.Errorf("pages: file %s defines an empty page id", path)
			}
			if _, exists := store.pages[id]; exists {
				return fmt.Errorf("pages: duplicate page %q (file %s)", id, path)
			}

			page, err := normalisePage(raw, id, path)
			if err != nil {
				return err
			}
			store.pages[id] = page
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Default loads the bundled page definitions.
func Default() (*Store, error) {
	return LoadFS(TemplatesFS())
}

type documentFile struct {
	Pages map[string]pageFile `json:"pages" yaml:"pages"`
}

type pageFile struct {
	Title    string       `json:"title" yaml:"title"`
	Subtitle string       `json:"subtitle" yaml:"subtitle"`
	Actions  []LinkConfig `json:"actions" yaml:"actions"`
	Forms    []FormConfig `json:"forms" yaml:"forms"`
	Links    []LinkConfig `json:"links" yaml:"links"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("pages: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("pages: parse %s: invalid JSON or YAML", source)
}

func normalisePage(raw pageFile, id, source string) (Page, error) {
	page := Page{
		ID:       id,
		Source:   source,
		Title:    strings.TrimSpace(raw.Title),
		Subtitle: strings.TrimSpace(raw.Subtitle),
		Actions:  append([]LinkConfig(nil), raw.Actions...),
		Links:    append([]LinkConfig(nil), raw.Links...),
	}

	seen := make(map[string]struct{}, len(raw.Forms))
	for idx, form := range raw.Forms {
		form.Name = strings.TrimSpace(form.Name)
		form.ID = strings.TrimSpace(form.ID)
		if form.ID == "" {
			form.ID = form.Name
		}
		if form.ID == "" {
			return Page{}, fmt.Errorf("pages: page %q (file %s) form %d needs an id or name", id, source, idx)
		}
		if _, exists := seen[form.ID]; exists {
			return Page{}, fmt.Errorf("pages: page %q (file %s) defines duplicate form %q", id, source, form.ID)
		}
		seen[form.ID] = struct{}{}

		for fieldIdx, field := range form.Fields {
			if strings.TrimSpace(field.Name) == "" {
				return Page{}, fmt.Errorf("pages: page %q form %q field %d has no name", id, form.ID, fieldIdx)
			}
			if field.Kind != "" && !model.Kind(field.Kind).Valid() {
				return Page{}, fmt.Errorf("pages: page %q form %q field %q has unknown kind %q", id, form.ID, field.Name, field.Kind)
			}
		}
		page.Forms = append(page.Forms, form)
	}

	return page, nil
}

func isPageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
