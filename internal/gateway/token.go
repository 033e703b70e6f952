package gateway

import (
	"sync"
	"time"
)

// tokenCache holds the provider bearer token for its lifetime. It is
// owned by the Client instance; tests inject now() to drive expiry.
type tokenCache struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

func newTokenCache(now func() time.Time) *tokenCache {
	if now == nil {
		now = time.Now
	}
	return &tokenCache{now: now}
}

// get returns the cached token, or "" when absent or expired.
func (c *tokenCache) get() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || !c.now().Before(c.expires) {
		return ""
	}
	return c.token
}

func (c *tokenCache) set(token string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expires = c.now().Add(ttl)
}

func (c *tokenCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expires = time.Time{}
}
