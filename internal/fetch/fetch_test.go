package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://example.com/site.json", true},
		{"http://localhost:8080/site.yaml", true},
		{"site.json", false},
		{"/abs/path/site.json", false},
		{"file:///tmp/site.json", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURL(tt.source))
		})
	}
}

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(`{"versao":"3.0"}`))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL+"/site", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, `{"versao":"3.0"}`, string(result.Body))
	assert.Equal(t, `"v1"`, result.ETag)
	assert.False(t, result.IsYAML())
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, "", nil)
	require.Error(t, err)
	require.NotNil(t, result)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestURL_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 11)))
	}))
	defer srv.Close()

	opts := DefaultOptions()
	opts.MaxBytes = 10
	_, err := URL(context.Background(), srv.URL, "", opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 10 bytes")
}

func TestURL_Invalid(t *testing.T) {
	_, err := URL(context.Background(), "not a url", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestResult_IsYAML(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{"yaml content type", Result{URL: "https://x.test/site", ContentType: "application/yaml"}, true},
		{"json content type wins over extension", Result{URL: "https://x.test/site.yaml", ContentType: "application/json"}, false},
		{"yml extension", Result{URL: "https://x.test/site.yml", ContentType: "text/plain"}, true},
		{"no hints", Result{URL: "https://x.test/site"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.IsYAML())
		})
	}
}
