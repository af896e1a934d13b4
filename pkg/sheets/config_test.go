package sheets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/justerika/signup-gateway/pkg/sheets"
)

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	full := sheets.Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "token"}
	assert.True(t, full.Enabled())

	assert.False(t, sheets.Config{}.Enabled())
	assert.False(t, sheets.Config{ClientID: "id", ClientSecret: "secret"}.Enabled())
	assert.False(t, sheets.Config{ClientID: "id", RefreshToken: "token"}.Enabled())
}

func TestConfig_OAuthConfig(t *testing.T) {
	t.Parallel()

	cfg := sheets.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8090/oauth2/callback",
	}
	oc := cfg.OAuthConfig()
	assert.Equal(t, "id", oc.ClientID)
	assert.Equal(t, "http://localhost:8090/oauth2/callback", oc.RedirectURL)
	assert.Equal(t, []string{sheetsapi.SpreadsheetsScope}, oc.Scopes)
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := sheets.NewClient(t.Context(), sheets.Config{})
	assert.ErrorIs(t, err, sheets.ErrMissingCredentials)
}
