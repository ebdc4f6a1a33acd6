package plot

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultTemplateName is the built-in single-series line chart template.
const DefaultTemplateName = "default.json"

// defaultTemplateContent is the built-in template: one placeholder, x/y
// quantitative axes, and the revision tag on the color channel.
var defaultTemplateContent = []byte(`{
    "$schema": "https://vega.github.io/schema/vega-lite/v4.json",
    "title": "",
    "data": {
        "values": "<REVPLOT_DATA:data>"
    },
    "mark": {
        "type": "line"
    },
    "encoding": {
        "x": {
            "field": "x",
            "type": "quantitative"
        },
        "y": {
            "field": "y",
            "type": "quantitative"
        },
        "color": {
            "field": "rev",
            "type": "nominal"
        }
    }
}
`)

// Storage persists and resolves plot templates under the templates directory.
type Storage struct {
	fs  afero.Fs
	dir string
}

// NewStorage creates template storage rooted at dir on fs.
func NewStorage(fs afero.Fs, dir string) *Storage {
	return &Storage{fs: fs, dir: dir}
}

// DefaultPath returns the path of the built-in default template.
func (s *Storage) DefaultPath() string {
	return filepath.Join(s.dir, DefaultTemplateName)
}

// EnsureDefaults writes the built-in templates on first use. Idempotent:
// existing files are left untouched.
func (s *Storage) EnsureDefaults() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create templates directory '%s': %w", s.dir, err)
	}
	path := s.DefaultPath()
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return fmt.Errorf("failed to check template '%s': %w", path, err)
	}
	if exists {
		return nil
	}
	if err := afero.WriteFile(s.fs, path, defaultTemplateContent, 0o644); err != nil {
		return fmt.Errorf("failed to write template '%s': %w", path, err)
	}
	return nil
}

// Resolve maps a template name or path to a stored template path. An empty
// name resolves to the default template; an existing filesystem path wins
// over stored names; stored names may omit the .json suffix.
func (s *Storage) Resolve(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return s.DefaultPath(), nil
	}
	candidates := []string{
		nameOrPath,
		filepath.Join(s.dir, nameOrPath),
		filepath.Join(s.dir, nameOrPath+".json"),
	}
	for _, candidate := range candidates {
		exists, err := afero.Exists(s.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check template '%s': %w", candidate, err)
		}
		if exists {
			return candidate, nil
		}
	}
	return "", &TemplateNotFoundError{Name: nameOrPath}
}

// Load reads a resolved template from storage.
func (s *Storage) Load(path string) (*Template, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template '%s': %w", path, err)
	}
	return NewTemplate(filepath.Base(path), content), nil
}
