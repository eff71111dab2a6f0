package httpcache

import (
	"log/slog"
	"net/url"
	"sync"
	"time"
)

// Rate limiting: one outstanding fetch per domain, with a floor on spacing.
var globalRateLimiter = NewDomainRateLimiter(500 * time.Millisecond)

// DomainRateLimiter enforces a minimum delay between requests to the same
// domain. It is safe for concurrent use from multiple goroutines.
type DomainRateLimiter struct {
	domainOverride map[string]time.Duration
	lastRequest    sync.Map // map[string]time.Time
	mu             sync.Map // map[string]*sync.Mutex - per-domain locks
	minDelay       time.Duration
}

// NewDomainRateLimiter creates a rate limiter that enforces minDelay between
// requests to the same domain. Domain-specific overrides can be set with
// SetDomainDelay.
func NewDomainRateLimiter(minDelay time.Duration) *DomainRateLimiter {
	return &DomainRateLimiter{
		minDelay:       minDelay,
		domainOverride: make(map[string]time.Duration),
	}
}

// SetDomainDelay sets a custom minimum delay for a specific domain.
func (r *DomainRateLimiter) SetDomainDelay(domain string, delay time.Duration) {
	r.domainOverride[domain] = delay
}

// Wait blocks until it's safe to make a request to the given URL's domain.
func (r *DomainRateLimiter) Wait(rawURL string, logger *slog.Logger) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return
	}
	domain := u.Host

	muI, _ := r.mu.LoadOrStore(domain, &sync.Mutex{})
	mu, ok := muI.(*sync.Mutex)
	if !ok {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	delay := r.minDelay
	if override, ok := r.domainOverride[domain]; ok {
		delay = override
	}

	if lastI, ok := r.lastRequest.Load(domain); ok {
		if last, ok := lastI.(time.Time); ok {
			if elapsed := time.Since(last); elapsed < delay {
				waitTime := delay - elapsed
				if logger != nil {
					logger.Debug("rate limit pause", "domain", domain, "wait", waitTime.Round(time.Millisecond))
				}
				time.Sleep(waitTime)
			}
		}
	}

	r.lastRequest.Store(domain, time.Now())
}
