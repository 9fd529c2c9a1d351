package platform

import (
	"context"
	"testing"
	"time"

	"github.com/qolzam/jobly/internal/cache"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseService_RequiresConfig(t *testing.T) {
	_, err := NewBaseService(context.Background(), nil)
	assert.Error(t, err)
}

func TestNewBaseService_BadKeys(t *testing.T) {
	cfg := &platformconfig.Config{}
	cfg.JWT.PrivateKey = "not a key"
	cfg.JWT.TokenTTL = time.Hour

	_, err := NewBaseService(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing key")
}

func TestBaseService_PingAndClose(t *testing.T) {
	client, mock := testutil.NewMockClientWithPings(t)
	keys := testutil.NewKeys(t)
	cacheService := cache.NewService(cache.NewMemoryCache(10, time.Minute), "test:", time.Minute)

	base := NewBaseServiceWith(&platformconfig.Config{}, client, cacheService, keys.Issuer, keys.Verifier)

	mock.ExpectPing()
	require.NoError(t, base.Ping(context.Background()))

	mock.ExpectClose()
	require.NoError(t, base.Close())
}
