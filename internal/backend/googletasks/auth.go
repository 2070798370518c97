package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	tasks "google.golang.org/api/tasks/v1"

	"goaltask/internal/config"
)

const (
	callbackTimeout = 5 * time.Minute
	exchangeTimeout = 30 * time.Second

	// Callback ports tried in order.
	callbackStartPort = 8085
	callbackPorts     = 5
)

// ErrNoOAuthClient is returned when oauth_client.json is missing.
var ErrNoOAuthClient = errors.New("oauth_client.json not found")

// OAuthConfig reads the desktop OAuth client from the config directory.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	data, err := os.ReadFile(cfg.OAuthClientPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w in %s", ErrNoOAuthClient, cfg.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}
	oc, err := google.ConfigFromJSON(data, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}
	return oc, nil
}

// LoadToken reads a stored token.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("not logged in (run: goaltask login): %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}
	return &token, nil
}

// SaveToken writes a token with mode 0600.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// TokenValid reports whether the stored token has a refresh token and can
// still produce an access token.
func TokenValid(ctx context.Context, cfg *config.Config) bool {
	token, err := LoadToken(cfg.TokenPath())
	if err != nil || token.RefreshToken == "" {
		return false
	}
	oc, err := OAuthConfig(cfg)
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err = oc.TokenSource(ctx, token).Token()
	return err == nil
}

// Login runs the installed-app flow: it prints the consent URL to prompt,
// waits for the redirect on a local port, exchanges the code with PKCE and
// stores the token in the config directory.
func Login(ctx context.Context, cfg *config.Config, prompt io.Writer) error {
	oc, err := OAuthConfig(cfg)
	if err != nil {
		return err
	}

	listener, port, err := listenCallback()
	if err != nil {
		return err
	}
	defer listener.Close()

	oc.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)
	verifier := oauth2.GenerateVerifier()
	authURL := oc.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	fmt.Fprintln(prompt, "Open this URL in your browser:")
	fmt.Fprintln(prompt, authURL)

	code, err := awaitCode(ctx, listener)
	if err != nil {
		return err
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()
	token, err := oc.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if err := cfg.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := SaveToken(cfg.TokenPath(), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func listenCallback() (net.Listener, int, error) {
	for port := callbackStartPort; port < callbackStartPort+callbackPorts; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			return l, port, nil
		}
	}
	return nil, 0, errors.New("could not bind to local port for OAuth callback")
}

// awaitCode serves the redirect once and returns the authorization code.
func awaitCode(ctx context.Context, listener net.Listener) (string, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			errCh <- errors.New("no code in callback")
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Authentication successful</h1><p>You may close this window.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	select {
	case code := <-codeCh:
		return code, nil
	case err := <-errCh:
		return "", err
	case <-time.After(callbackTimeout):
		return "", errors.New("oauth callback timed out")
	case <-ctx.Done():
		return "", errors.New("cancelled")
	}
}
