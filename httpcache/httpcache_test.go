package httpcache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// memCache is a minimal in-memory Cacher for exercising FetchURL without
// touching the filesystem.
type memCache struct {
	entries map[string][]byte
}

func (m *memCache) GetSet(ctx context.Context, key string, fetch func(context.Context) ([]byte, error), _ ...time.Duration) ([]byte, error) {
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	v, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	m.entries[key] = v
	return v, nil
}

func (*memCache) TTL() time.Duration { return time.Hour }

func TestURLToKey(t *testing.T) {
	a := URLToKey("https://example.com/a")
	b := URLToKey("https://example.com/b")
	if a == b {
		t.Error("distinct URLs produced the same key")
	}
	if a != URLToKey("https://example.com/a") {
		t.Error("same URL produced different keys")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
}

func TestFetchURLWithoutCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "hello") //nolint:errcheck // test server
	}))
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}

	body, err := FetchURL(context.Background(), nil, srv.Client(), req, nil)
	if err != nil {
		t.Fatalf("FetchURL: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want hello", body)
	}
}

func TestFetchURLCachesResponses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		io.WriteString(w, "payload") //nolint:errcheck // test server
	}))
	defer srv.Close()

	cache := &memCache{entries: make(map[string][]byte)}
	for range 3 {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
		if err != nil {
			t.Fatal(err)
		}
		body, err := FetchURL(context.Background(), cache, srv.Client(), req, nil)
		if err != nil {
			t.Fatalf("FetchURL: %v", err)
		}
		if string(body) != "payload" {
			t.Errorf("body = %q", body)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("origin hit %d times, want 1", got)
	}
}

// HTTP error statuses are cached as sentinel entries and come back as
// HTTPError on later calls without re-fetching.
func TestFetchURLCachesErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	cache := &memCache{entries: make(map[string][]byte)}
	for range 2 {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
		if err != nil {
			t.Fatal(err)
		}
		_, err = FetchURL(context.Background(), cache, srv.Client(), req, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
			t.Fatalf("err = %v, want HTTPError 404", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("origin hit %d times, want 1", got)
	}
}

// Status errors must not trigger a retry; only socket-level failures do.
func TestIsRetryableError(t *testing.T) {
	if isRetryableError(&HTTPError{StatusCode: 429, URL: "x"}) {
		t.Error("HTTP status errors must not be retried")
	}
	if !isRetryableError(errors.New("connection reset")) {
		t.Error("network errors should be retried")
	}
}

func TestDomainRateLimiterSpacing(t *testing.T) {
	limiter := NewDomainRateLimiter(50 * time.Millisecond)

	start := time.Now()
	limiter.Wait("https://example.com/a", nil)
	limiter.Wait("https://example.com/b", nil)
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("second request after %v, want at least the 50ms floor", elapsed)
	}

	// A different domain is not subject to the first domain's clock.
	start = time.Now()
	limiter.Wait("https://other.example/a", nil)
	if elapsed := time.Since(start); elapsed > 40*time.Millisecond {
		t.Errorf("fresh domain waited %v, want no delay", elapsed)
	}
}

func TestDomainRateLimiterOverride(t *testing.T) {
	limiter := NewDomainRateLimiter(time.Hour)
	limiter.SetDomainDelay("fast.example", time.Millisecond)

	start := time.Now()
	limiter.Wait("https://fast.example/a", nil)
	limiter.Wait("https://fast.example/b", nil)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("override ignored, waited %v", elapsed)
	}
}
