package secret

import (
	"fmt"
	"os"
	"sync"
)

// ConfigurationError marks a missing or empty signing secret. Handlers map
// it to a 500-class response, never to an auth failure.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration value %q", e.Key)
}

// Provider loads the signing secret from the environment on first use and
// caches it for the life of the process. A failed load is not cached, so a
// fixed environment takes effect without a restart of the lookup func.
type Provider struct {
	key    string
	lookup func(string) string

	mu     sync.Mutex
	cached string
}

func NewProvider(key string) *Provider {
	return &Provider{key: key, lookup: os.Getenv}
}

// NewProviderWithLookup injects the env lookup, for tests.
func NewProviderWithLookup(key string, lookup func(string) string) *Provider {
	return &Provider{key: key, lookup: lookup}
}

func (p *Provider) Get() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached, nil
	}
	v := p.lookup(p.key)
	if v == "" {
		return "", &ConfigurationError{Key: p.key}
	}
	p.cached = v
	return v, nil
}
