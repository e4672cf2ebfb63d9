package extractr_test

import (
	"testing"

	"github.com/Tylerbryy/extractr"
	"github.com/stretchr/testify/assert"
)

func TestTemplateDefaults(t *testing.T) {
	t.Parallel()

	t.Run("pagination defaults", func(t *testing.T) {
		t.Parallel()

		var p *extractr.PaginationConfig
		assert.Equal(t, 1, p.Pages())
		assert.Equal(t, 2000, p.Delay())

		p = &extractr.PaginationConfig{MaxPages: 5, WaitMs: 500}
		assert.Equal(t, 5, p.Pages())
		assert.Equal(t, 500, p.Delay())
	})

	t.Run("options defaults", func(t *testing.T) {
		t.Parallel()

		var o *extractr.TemplateOptions
		assert.True(t, o.JSEnabled())
		assert.Equal(t, 30000, o.TimeoutMs())

		off := false
		o = &extractr.TemplateOptions{EnableJS: &off, Timeout: 5000}
		assert.False(t, o.JSEnabled())
		assert.Equal(t, 5000, o.TimeoutMs())
	})
}

func TestTemplate_FieldNames(t *testing.T) {
	t.Parallel()

	tmpl := &extractr.Template{
		Fields: []extractr.FieldDefinition{
			{Name: "title"},
			{Name: "price"},
			{Name: "url"},
		},
	}

	assert.Equal(t, []string{"title", "price", "url"}, tmpl.FieldNames())
}
