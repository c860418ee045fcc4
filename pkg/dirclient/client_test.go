package dirclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/identkit-io/dirsvc/pkg/dirclient"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := dirclient.New(nil)
	require.ErrorIs(t, err, dirsvc.ErrConfigRequired)
}

func TestNew_MissingEndpoint(t *testing.T) {
	t.Parallel()

	_, err := dirclient.New(&dirsvc.Config{APIKey: "test-key"})
	require.ErrorIs(t, err, dirsvc.ErrAPIEndpointRequired)
}

func TestNew_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, err := dirclient.New(&dirsvc.Config{APIEndpoint: "https://directory.example.com"})
	require.ErrorIs(t, err, dirsvc.ErrAPIKeyRequired)
}

func TestNew_ValidConfig(t *testing.T) {
	t.Parallel()

	client, err := dirclient.New(&dirsvc.Config{
		APIEndpoint: "https://directory.example.com",
		APIKey:      "test-key",
	})
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.Roles())
	assert.NotNil(t, client.Groups())
	assert.NotNil(t, client.Events())
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{
			name:     "trailing slash trimmed",
			endpoint: "https://directory.example.com/",
			expected: "https://directory.example.com",
		},
		{
			name:     "scheme added when missing",
			endpoint: "directory.example.com",
			expected: "https://directory.example.com",
		},
		{
			name:     "http scheme preserved",
			endpoint: "http://localhost:8080",
			expected: "http://localhost:8080",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &dirsvc.Config{
				APIEndpoint: testCase.endpoint,
				APIKey:      "test-key",
			}

			_, err := dirclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config.APIEndpoint)
		})
	}
}

func TestNew_WithResponseCache(t *testing.T) {
	t.Parallel()

	client, err := dirclient.New(&dirsvc.Config{
		APIEndpoint: "https://directory.example.com",
		APIKey:      "test-key",
		Cache:       dirsvc.DefaultCacheConfig(),
	})
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNew_WithBadCacheConfig(t *testing.T) {
	t.Parallel()

	_, err := dirclient.New(&dirsvc.Config{
		APIEndpoint: "https://directory.example.com",
		APIKey:      "test-key",
		Cache:       &dirsvc.CacheConfig{Type: "bogus"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dirsvc.ErrUnsupportedCacheType)
}
