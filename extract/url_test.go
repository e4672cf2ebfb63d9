package extract_test

import (
	"testing"

	"github.com/Tylerbryy/extractr"
	"github.com/Tylerbryy/extractr/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("prepends https and an explicit path", func(t *testing.T) {
		t.Parallel()

		got, err := extract.NormalizeURL("example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", got)
	})

	t.Run("preserves an existing scheme and path", func(t *testing.T) {
		t.Parallel()

		got, err := extract.NormalizeURL("http://example.com/shop?page=2")

		require.NoError(t, err)
		assert.Equal(t, "http://example.com/shop?page=2", got)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "   ", "\t\n"} {
			_, err := extract.NormalizeURL(input)

			require.Error(t, err)
			assert.Equal(t, extractr.EINVALIDURL, extractr.ErrorCode(err))
			assert.Contains(t, extractr.ErrorMessage(err), "empty")
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"http://[::1:bad", "ftp://example.com", "https://"} {
			_, err := extract.NormalizeURL(input)

			require.Error(t, err)
			assert.Equal(t, extractr.EINVALIDURL, extractr.ErrorCode(err))
			assert.Contains(t, extractr.ErrorMessage(err), "Invalid URL")
		}
	})
}
