package mock

import "github.com/Tylerbryy/extractr"

var _ extractr.TemplateLoader = (*TemplateLoader)(nil)

// TemplateLoader is a mock implementation of extractr.TemplateLoader.
type TemplateLoader struct {
	LoadFn func(identifier string, local bool) (*extractr.Template, error)
}

func (l *TemplateLoader) Load(identifier string, local bool) (*extractr.Template, error) {
	return l.LoadFn(identifier, local)
}
