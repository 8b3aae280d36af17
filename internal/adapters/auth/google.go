// Package auth builds the federated sign-in configuration from resolved
// secrets. There are no hardcoded fallbacks: a missing credential fails the
// construction instead of silently producing a broken sign-in flow.
package auth

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/phenrril/modashop/internal/secrets"
)

const (
	keyClientID     = "GOOGLE_CLIENT_ID"
	keyClientSecret = "GOOGLE_CLIENT_SECRET"
)

// NewGoogleConfig resolves the Google OAuth credentials through the secrets
// cascade. The error is a domain.ConfigMissingError naming the absent key and
// the sources tried.
func NewGoogleConfig(res *secrets.Resolver, redirectURL string) (*oauth2.Config, error) {
	id, err := res.Require(keyClientID)
	if err != nil {
		return nil, err
	}
	secret, err := res.Require(keyClientSecret)
	if err != nil {
		return nil, err
	}
	return &oauth2.Config{
		ClientID:     id,
		ClientSecret: secret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}
