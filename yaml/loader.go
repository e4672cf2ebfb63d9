// Package yaml implements template loading from YAML files and the
// embedded built-in template registry.
package yaml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/Tylerbryy/extractr"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements extractr.TemplateLoader at compile time.
var _ extractr.TemplateLoader = (*Loader)(nil)

// Loader resolves template identifiers against the built-in registry or,
// for local loads, against the filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the template for the identifier. When local is true the
// identifier is a path to a YAML file; otherwise it names a built-in
// template.
func (l *Loader) Load(identifier string, local bool) (*extractr.Template, error) {
	if local {
		return loadFile(identifier)
	}
	tmpl, ok := builtin(identifier)
	if !ok {
		return nil, extractr.Errorf(extractr.ENOTFOUND, "Unknown template %q. Run the list command to see available templates.", identifier)
	}
	return tmpl, nil
}

func loadFile(path string) (*extractr.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, extractr.Errorf(extractr.ENOTFOUND, "Template file %q does not exist.", path)
		}
		return nil, extractr.Errorf(extractr.ENOTFOUND, "Cannot read template file %q: %v", path, err)
	}

	var tmpl extractr.Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, extractr.Errorf(extractr.EINVALIDTEMPLATE, "Cannot parse template file %q: %v", path, err)
	}
	return &tmpl, nil
}
