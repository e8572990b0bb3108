package authenticator

import (
	"context"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Request describes a single login attempt
type Request struct {
	Scopes      []string
	State       string
	RedirectURI string
}

// Token represents the credentials returned by the token exchange.
// Raw holds provider-specific extras such as the granted scope list.
type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresAt    time.Time
	Raw          map[string]string
}

// Profile represents provider profile fields as a field mapping
type Profile map[string]any

// String returns the named profile field as a string, "" if absent
// or not a string.
func (p Profile) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Credentials is the normalized view of a Token
type Credentials struct {
	Token        string
	TokenType    string
	RefreshToken string
	ExpiresAt    time.Time
	Expires      bool
	Scopes       []string
}

// Info is the normalized profile record. Fields the provider did not
// supply are zero; the full profile stays reachable through Raw.
type Info struct {
	UID         string
	Name        string
	Email       string
	Nickname    string
	Location    string
	Description string
	Image       string
	URLs        map[string]string
	Raw         Profile
}

// Result is the terminal value of a successful callback
type Result struct {
	Credentials Credentials
	Info        Info
	RawToken    *Token
	RawProfile  Profile
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	Name() string
	GetAuthURL(req Request) (string, error)
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetProfile(ctx context.Context, token *Token) (Profile, error)
	GetInfo(profile Profile) Info
}

// Credentials maps the token into its normalized form. Scopes come
// from splitting the granted "scope" extra on commas.
func (t *Token) Credentials() Credentials {
	return Credentials{
		Token:        t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.ExpiresAt,
		Expires:      !t.ExpiresAt.IsZero(),
		Scopes:       SplitScopes(t.Raw["scope"]),
	}
}

// OAuth2 converts the token for use with golang.org/x/oauth2 based
// API clients. Raw extras stay reachable through Extra.
func (t *Token) OAuth2() *oauth2.Token {
	extra := make(map[string]interface{}, len(t.Raw))
	for k, v := range t.Raw {
		extra[k] = v
	}

	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.ExpiresAt,
	}

	return tok.WithExtra(extra)
}

// SplitScopes splits a comma-separated scope list, trimming
// whitespace and dropping empty entries.
func SplitScopes(scope string) []string {
	if scope == "" {
		return nil
	}

	var scopes []string
	for _, s := range strings.Split(scope, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}
