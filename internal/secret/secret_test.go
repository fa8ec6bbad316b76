package secret

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_CachesFirstValue(t *testing.T) {
	t.Parallel()

	calls := 0
	value := "first"
	p := NewProviderWithLookup("jwt_secret", func(key string) string {
		calls++
		assert.Equal(t, "jwt_secret", key)
		return value
	})

	got, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	// A changed environment must not change the cached result.
	value = "second"
	got, err = p.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", got)
	assert.Equal(t, 1, calls)
}

func TestProvider_MissingValue(t *testing.T) {
	t.Parallel()

	p := NewProviderWithLookup("jwt_secret", func(string) string { return "" })

	got, err := p.Get()
	require.Error(t, err)
	assert.Empty(t, got)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "jwt_secret", confErr.Key)
}

func TestProvider_RecoversAfterFix(t *testing.T) {
	t.Parallel()

	value := ""
	p := NewProviderWithLookup("jwt_secret", func(string) string { return value })

	_, err := p.Get()
	require.Error(t, err)

	value = "now-set"
	got, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "now-set", got)
}

func TestProvider_ConcurrentFirstLoad(t *testing.T) {
	t.Parallel()

	p := NewProviderWithLookup("jwt_secret", func(string) string { return "shared" })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Get()
			assert.NoError(t, err)
			assert.Equal(t, "shared", got)
		}()
	}
	wg.Wait()
}
