package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/modashop/internal/domain"
	"github.com/phenrril/modashop/internal/secrets"
)

type mapSource struct {
	name string
	vals map[string]string
}

func (s mapSource) Name() string { return s.name }

func (s mapSource) ReadAll() (map[string]string, error) { return s.vals, nil }

func TestNewGoogleConfig(t *testing.T) {
	res := secrets.New(mapSource{name: "bundled", vals: map[string]string{
		"GOOGLE_CLIENT_ID":     "web-123",
		"GOOGLE_CLIENT_SECRET": "shh",
	}})

	cfg, err := NewGoogleConfig(res, "https://modashop.app/callback")
	require.NoError(t, err)
	assert.Equal(t, "web-123", cfg.ClientID)
	assert.Equal(t, []string{"openid", "email", "profile"}, cfg.Scopes)
}

func TestNewGoogleConfigMissingSecret(t *testing.T) {
	res := secrets.New(mapSource{name: "bundled", vals: map[string]string{
		"GOOGLE_CLIENT_ID": "web-123",
	}})

	_, err := NewGoogleConfig(res, "")
	require.Error(t, err)

	var missing *domain.ConfigMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "GOOGLE_CLIENT_SECRET", missing.Key)
}
