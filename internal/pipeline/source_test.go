package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/fetch"
)

// serveFixture serves a fixture file under name with the given content type
func serveFixture(t *testing.T, fixture, name, contentType string) string {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+name {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/" + name
}

func TestReadSource_LocalFile(t *testing.T) {
	data, format, err := readSource(context.Background(), minimalYAML, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, adapter.FormatYAML, format)
}

func TestReadSource_URL(t *testing.T) {
	url := serveFixture(t, minimalYAML, "site", "application/yaml")

	_, format, err := readSource(context.Background(), url, nil)
	require.NoError(t, err)
	assert.Equal(t, adapter.FormatYAML, format)
}

func TestRun_URLSourceMatchesLocalFile(t *testing.T) {
	url := serveFixture(t, fullFixture, "universal.json", "application/json")
	fetcher := fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{CacheTTL: time.Minute})

	opts := testOptions(url)
	opts.Fetcher = fetcher
	remote, err := Run(context.Background(), opts)
	require.NoError(t, err)

	local, err := Run(context.Background(), testOptions(fullFixture))
	require.NoError(t, err)

	assert.Equal(t, local.Site, remote.Site)
	assert.True(t, local.Tokens.Equal(remote.Tokens))
	assert.Equal(t, url, remote.SourcePath)
}

func TestRun_URLSourceNotFound(t *testing.T) {
	url := serveFixture(t, fullFixture, "universal.json", "application/json")

	_, err := Run(context.Background(), testOptions(url+".missing"))
	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}
