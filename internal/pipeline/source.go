package pipeline

import (
	"context"
	"os"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/fetch"
)

// readSource returns the raw document and its format. URL sources go through fetcher
// when one is given.
func readSource(ctx context.Context, source string, fetcher *fetch.CachedFetcher) ([]byte, adapter.Format, error) {
	if !fetch.IsURL(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, "", err
		}
		return data, adapter.FormatFromPath(source), nil
	}

	var result *fetch.Result
	if fetcher != nil {
		cached, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, "", err
		}
		result = cached.Result
	} else {
		fetched, err := fetch.URL(ctx, source, "", nil)
		if err != nil {
			return nil, "", err
		}
		result = fetched
	}

	if result.IsYAML() {
		return result.Body, adapter.FormatYAML, nil
	}
	return result.Body, adapter.FormatJSON, nil
}
