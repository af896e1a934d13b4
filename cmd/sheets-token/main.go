// Command sheets-token walks through the one-time Google OAuth2 consent flow
// and prints the refresh token the server needs in GOOGLE_REFRESH_TOKEN.
package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/justerika/signup-gateway/pkg/config"
	"github.com/justerika/signup-gateway/pkg/sheets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg sheets.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	redirect, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		return fmt.Errorf("parse GOOGLE_REDIRECT_URI: %w", err)
	}

	oauthCfg := cfg.OAuthConfig()

	// Force consent so Google issues a refresh token even if access was
	// granted before.
	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	codeCh := make(chan string, 1)
	srv := &http.Server{
		Addr:              redirect.Host,
		ReadHeaderTimeout: 10 * time.Second,
	}
	http.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code parameter", http.StatusBadRequest)
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this tab.")
		codeCh <- code
	})

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintln(os.Stderr, "callback server:", err)
			os.Exit(1)
		}
	}()

	fmt.Println("Open this URL in your browser and authorize access:")
	fmt.Println()
	fmt.Println("  " + authURL)
	fmt.Println()
	fmt.Println("Waiting for the OAuth callback on", cfg.RedirectURI, "...")

	code := <-codeCh

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if tok.RefreshToken == "" {
		return fmt.Errorf("no refresh token in response; revoke the app's access and try again")
	}

	fmt.Println()
	fmt.Println("Add this to your environment:")
	fmt.Println()
	fmt.Printf("  GOOGLE_REFRESH_TOKEN=%s\n", tok.RefreshToken)
	return nil
}
