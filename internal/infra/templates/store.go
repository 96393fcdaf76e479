// Package templates provides named initial-content templates.
//
// Templates live in YAML files mapping a name to a text/template body.
// A repo-local .texty.yaml overrides entries from the global
// templates.yaml. Bodies are rendered with the sprig function set.
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/codinganovel/texty/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements domain.TemplateStore.
var _ domain.TemplateStore = (*Store)(nil)

// Store loads templates from the global config dir and the working dir.
type Store struct {
	workDir   string
	globalDir string
}

// NewStore creates a template store.
func NewStore(workDir, globalDir string) *Store {
	return &Store{workDir: workDir, globalDir: globalDir}
}

type entry struct {
	body   string
	source string
}

// Render renders the named template with the given data.
func (s *Store) Render(name string, data domain.TemplateData) (string, error) {
	entries, err := s.load()
	if err != nil {
		return "", err
	}
	e, ok := entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
	}

	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(e.body)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return out.String(), nil
}

// List returns available templates sorted by name.
func (s *Store) List() ([]domain.TemplateInfo, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	infos := make([]domain.TemplateInfo, 0, len(entries))
	for name, e := range entries {
		infos = append(infos, domain.TemplateInfo{Name: name, Source: e.source})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// load merges both template files, local entries winning.
func (s *Store) load() (map[string]entry, error) {
	entries := make(map[string]entry)

	if s.globalDir != "" {
		path := filepath.Join(s.globalDir, domain.GlobalTemplatesFileName)
		if err := mergeFile(entries, path); err != nil {
			return nil, err
		}
	}
	if s.workDir != "" {
		path := filepath.Join(s.workDir, domain.TemplatesFileName)
		if err := mergeFile(entries, path); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func mergeFile(entries map[string]entry, path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // Template path is derived from known directories
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read templates: %w", err)
	}
	var parsed map[string]string
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for name, body := range parsed {
		entries[name] = entry{body: body, source: path}
	}
	return nil
}
