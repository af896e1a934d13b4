package sheets

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Config holds the Google OAuth2 credentials used to append rows. The refresh
// token is obtained once via the sheets-token helper and reused from then on.
type Config struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURI  string `env:"GOOGLE_REDIRECT_URI" envDefault:"http://localhost:8090/oauth2/callback"`
	RefreshToken string `env:"GOOGLE_REFRESH_TOKEN"`
}

// Enabled reports whether enough credentials are present to talk to the API.
func (c Config) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// OAuthConfig builds the oauth2 client config for the spreadsheets scope.
func (c Config) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Scopes:       []string{sheetsapi.SpreadsheetsScope},
		Endpoint:     google.Endpoint,
	}
}
