package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPageCacheTTL is how long fetched page text stays fresh. Campaign
// stories rarely change within a day.
const DefaultPageCacheTTL = 24 * time.Hour

// CachedFetcher wraps a Fetcher with redis-backed caching of extracted page
// text, keyed by URL hash.
type CachedFetcher struct {
	inner     Fetcher
	rdb       *redis.Client
	cacheTTL  time.Duration
	skipCache bool // for testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
}

// NewCachedFetcher creates a cached fetcher around inner. A nil config uses
// the default TTL.
func NewCachedFetcher(inner Fetcher, rdb *redis.Client, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultPageCacheTTL
	}
	return &CachedFetcher{
		inner:     inner,
		rdb:       rdb,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// PageText returns cached page text when fresh, otherwise fetches and
// caches. Cache errors other than a miss fall through to a live fetch.
func (f *CachedFetcher) PageText(ctx context.Context, urlStr string) (string, error) {
	key := cacheKey(urlStr)

	if !f.skipCache && f.rdb != nil {
		cached, err := f.rdb.Get(ctx, key).Result()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			// Cache unavailable; fetch live rather than failing the page.
			return f.inner.PageText(ctx, urlStr)
		}
	}

	text, err := f.inner.PageText(ctx, urlStr)
	if err != nil {
		return "", err
	}

	if f.rdb != nil && text != "" {
		_ = f.rdb.Set(ctx, key, text, f.cacheTTL).Err()
	}
	return text, nil
}

func cacheKey(urlStr string) string {
	sum := sha256.Sum256([]byte(urlStr))
	return "page:" + hex.EncodeToString(sum[:])
}
