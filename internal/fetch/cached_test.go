package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher records how many live fetches happened.
type countingFetcher struct {
	text  string
	err   error
	calls int
}

func (f *countingFetcher) PageText(ctx context.Context, urlStr string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCachedFetcher_CachesPageText(t *testing.T) {
	_, rdb := newTestRedis(t)
	inner := &countingFetcher{text: "campaign story"}
	fetcher := NewCachedFetcher(inner, rdb, nil)

	ctx := context.Background()
	url := "https://www.gofundme.com/f/help-jane"

	text, err := fetcher.PageText(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "campaign story", text)
	assert.Equal(t, 1, inner.calls)

	text, err = fetcher.PageText(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "campaign story", text)
	assert.Equal(t, 1, inner.calls, "second read should hit the cache")
}

func TestCachedFetcher_TTLExpiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	inner := &countingFetcher{text: "campaign story"}
	fetcher := NewCachedFetcher(inner, rdb, &CachedFetcherConfig{CacheTTL: time.Minute})

	ctx := context.Background()
	url := "https://www.gofundme.com/f/help-jane"

	_, err := fetcher.PageText(ctx, url)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = fetcher.PageText(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "expired entry should refetch")
}

func TestCachedFetcher_SkipCache(t *testing.T) {
	_, rdb := newTestRedis(t)
	inner := &countingFetcher{text: "campaign story"}
	fetcher := NewCachedFetcher(inner, rdb, &CachedFetcherConfig{SkipCache: true})

	ctx := context.Background()
	url := "https://www.gofundme.com/f/help-jane"

	_, _ = fetcher.PageText(ctx, url)
	_, _ = fetcher.PageText(ctx, url)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedFetcher_ErrorsAreNotCached(t *testing.T) {
	_, rdb := newTestRedis(t)
	inner := &countingFetcher{err: errors.New("boom")}
	fetcher := NewCachedFetcher(inner, rdb, nil)

	ctx := context.Background()
	url := "https://www.gofundme.com/f/help-jane"

	_, err := fetcher.PageText(ctx, url)
	require.Error(t, err)

	inner.err = nil
	inner.text = "recovered"
	text, err := fetcher.PageText(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
}

func TestCachedFetcher_NilRedisFetchesLive(t *testing.T) {
	inner := &countingFetcher{text: "campaign story"}
	fetcher := NewCachedFetcher(inner, nil, nil)

	text, err := fetcher.PageText(context.Background(), "https://www.gofundme.com/f/help-jane")
	require.NoError(t, err)
	assert.Equal(t, "campaign story", text)
}
