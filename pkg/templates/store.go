package templates

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/logging"
)

//go:embed builtin
var builtinFS embed.FS

// BuiltinDir is the directory of the embedded templates inside BuiltinFS
const BuiltinDir = "builtin"

// BuiltinFS exposes the embedded template set
func BuiltinFS() fs.FS {
	return builtinFS
}

// Store is an immutable name -> template text mapping
type Store struct {
	templates map[string]string
}

// NewStore builds a store from an in-memory mapping
func NewStore(templates map[string]string) *Store {
	copied := make(map[string]string, len(templates))
	for name, text := range templates {
		copied[name] = text
	}
	return &Store{templates: copied}
}

// LoadBuiltin loads the embedded template set
func LoadBuiltin() (*Store, error) {
	return Load(builtinFS, BuiltinDir)
}

// Load reads every regular file in dir. The template name is the filename
// without its last extension. Sub-directories are skipped.
func Load(fsys fs.FS, dir string) (*Store, error) {
	logger := logging.GetLogger("templates")

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "failed to read template directory %s", dir).
			WithDetail("dir", dir)
	}

	templates := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			logger.Debug().Str("dir", entry.Name()).Msg("Skipping sub-directory in templates")
			continue
		}

		name := TemplateName(entry.Name())
		logger.Info().Str("template", name).Msg("Reading template")

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "failed to read template %s", entry.Name()).
				WithDetail("template", name)
		}
		templates[name] = string(data)
	}

	return &Store{templates: templates}, nil
}

// TemplateName strips the last extension from a template filename
func TemplateName(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}

// Get returns the raw text of a template
func (s *Store) Get(name string) (string, bool) {
	text, ok := s.templates[name]
	return text, ok
}

// Names returns the template names in sorted order
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of templates
func (s *Store) Len() int {
	return len(s.templates)
}

// Render interpolates the named template
func (s *Store) Render(name string, vars Vars) ([]byte, error) {
	text, ok := s.templates[name]
	if !ok {
		return nil, errors.Newf(errors.ErrTemplateMissing, "template %q is not loaded", name).
			WithDetail("template", name)
	}
	return []byte(Interpolate(text, vars)), nil
}
