//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tylerbryy/extractr"
	"github.com/Tylerbryy/extractr/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ExtractsRenderedContent(t *testing.T) {
	t.Parallel()

	// Serve a page that uses JavaScript to add content
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Shop</title></head>
<body>
<div id="items"></div>
<script>
document.getElementById('items').innerHTML =
	'<div class="product"><h2>Widget</h2><span class="price">$5.00</span></div>';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	provider, err := rod.NewProvider()
	require.NoError(t, err)
	defer provider.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sess, err := provider.NewSession(ctx)
	require.NoError(t, err)
	defer sess.Close()

	err = sess.Navigate(ctx, srv.URL, extractr.NavigateOptions{
		WaitMode: extractr.WaitNetworkIdle,
		Timeout:  10 * time.Second,
	})
	require.NoError(t, err)

	tmpl := &extractr.Template{
		Name:      "products",
		Container: ".product",
		Fields: []extractr.FieldDefinition{
			{Name: "title", Selector: "h2"},
			{Name: "price", Selector: ".price", Type: extractr.TypeCurrency},
		},
	}

	records, err := sess.Extract(ctx, tmpl, false)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Widget", records[0]["title"])
	assert.Equal(t, 5.0, records[0]["price"])

	title, err := sess.Title()
	require.NoError(t, err)
	assert.Equal(t, "Shop", title)
}

func TestSession_NavigateHonorsCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {} // never respond
	}))
	defer srv.Close()

	provider, err := rod.NewProvider()
	require.NoError(t, err)
	defer provider.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sess, err := provider.NewSession(ctx)
	require.NoError(t, err)
	defer sess.Close()

	cancel()

	err = sess.Navigate(ctx, srv.URL, extractr.NavigateOptions{})
	assert.Error(t, err)
}
