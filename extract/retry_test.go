package extract_test

import (
	"testing"
	"time"

	"github.com/Tylerbryy/extractr/extract"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Nil(t, extract.DefaultRetryDelays(1))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, extract.DefaultRetryDelays(3))
}
