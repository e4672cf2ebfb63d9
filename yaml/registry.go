package yaml

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/Tylerbryy/extractr"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templatesFS embed.FS

var (
	registryOnce sync.Once
	registry     map[string]*extractr.Template
)

// loadRegistry parses the embedded templates exactly once. The embedded
// files are part of the build, so parse failures are programmer errors.
func loadRegistry() {
	registry = make(map[string]*extractr.Template)

	entries, err := fs.Glob(templatesFS, "templates/*.yaml")
	if err != nil {
		panic(fmt.Sprintf("globbing embedded templates: %v", err))
	}

	for _, path := range entries {
		data, err := templatesFS.ReadFile(path)
		if err != nil {
			panic(fmt.Sprintf("reading embedded template %s: %v", path, err))
		}

		var tmpl extractr.Template
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			panic(fmt.Sprintf("parsing embedded template %s: %v", path, err))
		}
		if problems := extractr.ValidateTemplate(&tmpl); len(problems) > 0 {
			panic(fmt.Sprintf("invalid embedded template %s: %s", path, strings.Join(problems, "; ")))
		}

		registry[tmpl.Name] = &tmpl
	}
}

// builtin returns a deep copy of the named built-in template, so callers
// cannot mutate the registry.
func builtin(name string) (*extractr.Template, bool) {
	registryOnce.Do(loadRegistry)

	tmpl, ok := registry[name]
	if !ok {
		return nil, false
	}
	return copyTemplate(tmpl), true
}

// BuiltinNames returns the names of the built-in templates, sorted.
func BuiltinNames() []string {
	registryOnce.Do(loadRegistry)

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinDescriptions returns name -> description for the built-in
// templates.
func BuiltinDescriptions() map[string]string {
	registryOnce.Do(loadRegistry)

	descs := make(map[string]string, len(registry))
	for name, tmpl := range registry {
		descs[name] = tmpl.Description
	}
	return descs
}

func copyTemplate(t *extractr.Template) *extractr.Template {
	out := *t
	out.Fields = copyFields(t.Fields)
	if t.Pagination != nil {
		p := *t.Pagination
		out.Pagination = &p
	}
	if t.Options != nil {
		o := *t.Options
		if t.Options.EnableJS != nil {
			v := *t.Options.EnableJS
			o.EnableJS = &v
		}
		out.Options = &o
	}
	return &out
}

func copyFields(fields []extractr.FieldDefinition) []extractr.FieldDefinition {
	if fields == nil {
		return nil
	}
	out := make([]extractr.FieldDefinition, len(fields))
	for i, f := range fields {
		out[i] = f
		if f.Transforms != nil {
			out[i].Transforms = make([]extractr.Transform, len(f.Transforms))
			copy(out[i].Transforms, f.Transforms)
		}
		out[i].Nested = copyFields(f.Nested)
	}
	return out
}
