package fetch

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a cached document is served without revalidation.
const DefaultCacheTTL = 5 * time.Second

// CachedFetcher wraps URL fetching with an in-memory cache. Entries younger than the TTL
// are served directly; older ones are revalidated with their ETag.
type CachedFetcher struct {
	options  *Options
	cacheTTL time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL time.Duration
	Options  *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL: DefaultCacheTTL,
		Options:  DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	return &CachedFetcher{
		options:  config.Options,
		cacheTTL: config.CacheTTL,
		now:      time.Now,
		cache:    make(map[string]*cacheEntry),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool // Whether the body came from cache
}

// Fetch retrieves a URL, using the cache when fresh or when the server confirms the
// cached copy with 304 Not Modified.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.Lock()
	entry := f.cache[urlStr]
	f.mu.Unlock()

	if entry != nil && f.now().Sub(entry.fetchedAt) < f.cacheTTL {
		return &CachedResult{Result: entry.result, FromCache: true}, nil
	}

	etag := ""
	if entry != nil {
		etag = entry.result.ETag
	}

	result, err := URL(ctx, urlStr, etag, f.options)
	if err != nil {
		return nil, err
	}

	if result.StatusCode == http.StatusNotModified && entry != nil {
		f.store(urlStr, entry.result)
		return &CachedResult{Result: entry.result, FromCache: true}, nil
	}

	f.store(urlStr, result)
	log.Printf("[fetch] fetched %s (%d bytes)", urlStr, len(result.Body))
	return &CachedResult{Result: result, FromCache: false}, nil
}

// InvalidateCache drops a cached document, forcing a full re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cache, urlStr)
}

func (f *CachedFetcher) store(urlStr string, result *Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[urlStr] = &cacheEntry{result: result, fetchedAt: f.now()}
}
