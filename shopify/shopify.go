// Package shopify implements the Shopify OAuth2 authorization-code
// strategy: building the authorize URL, exchanging a callback code
// for an access token, fetching the shop profile, and mapping both
// into the normalized authenticator types.
package shopify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alistairstead/ueberauth-shopify/authenticator"
)

// Name is the strategy identifier
const Name = "shopify"

// Responses larger than this are cut off rather than buffered
const maxResponseBytes = 1 << 20

// Provider implements the authenticator.Provider interface for
// Shopify. It holds no per-request state and is safe for concurrent
// use.
type Provider struct {
	config Config
	client *http.Client
}

// Option configures a Provider
type Option func(*Provider)

// WithHTTPClient injects the HTTP client used for outbound calls.
// Timeouts and cancellation belong to this client and the request
// context; the provider itself never retries.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// New creates a Shopify provider with the given configuration
func New(cfg Config, opts ...Option) (*Provider, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := &Provider{
		config: cfg,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the strategy identifier
func (p *Provider) Name() string {
	return Name
}

// Config returns the resolved provider configuration
func (p *Provider) Config() Config {
	return p.config
}

// GetAuthURL returns the authorization URL for the given request.
// Scopes and redirect URI fall back to the configured values; state
// is included iff the request carries one. No network call is made.
func (p *Provider) GetAuthURL(req authenticator.Request) (string, error) {
	cfg := p.config
	if cfg.Shop == "" || cfg.ClientID == "" {
		return "", authenticator.Errf(authenticator.KindConfig, "shop domain and client ID are required")
	}

	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = cfg.Scopes
	}
	redirect := req.RedirectURI
	if redirect == "" {
		redirect = cfg.RedirectURI
	}

	u, err := url.Parse(cfg.endpoint(cfg.AuthorizeURL))
	if err != nil {
		return "", authenticator.Wrap(authenticator.KindConfig, err)
	}

	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("redirect_uri", redirect)
	q.Set("scope", strings.Join(scopes, ","))
	if req.State != "" {
		q.Set("state", req.State)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// tokenResponse is the wire shape of the access token response
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshToken     string `json:"refresh_token"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode exchanges an authorization code for an access token.
// Single shot: a failed exchange is surfaced immediately, never
// retried here.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*authenticator.Token, error) {
	form := url.Values{}
	form.Set("client_id", p.config.ClientID)
	form.Set("client_secret", p.config.ClientSecret)
	form.Set("code", code)

	endpoint := p.config.endpoint(p.config.TokenURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		if !ok {
			return nil, authenticator.Errf(authenticator.KindTransport, "token endpoint returned %s", resp.Status)
		}
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}

	// The provider reported a protocol error, regardless of status
	if tr.Error != "" {
		msg := tr.Error
		if tr.ErrorDescription != "" {
			msg += ": " + tr.ErrorDescription
		}
		return nil, authenticator.Errf(authenticator.KindOAuth, "%s", msg)
	}
	if !ok {
		return nil, authenticator.Errf(authenticator.KindTransport, "token endpoint returned %s", resp.Status)
	}
	if tr.AccessToken == "" {
		return nil, authenticator.Errf(authenticator.KindTransport, "token response is missing access_token")
	}

	token := &authenticator.Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
		Raw:          rawParams(body),
	}
	if tr.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	return token, nil
}

// GetProfile fetches the shop profile using the access token. The
// token travels in the X-Shopify-Access-Token header.
func (p *Provider) GetProfile(ctx context.Context, token *authenticator.Token) (authenticator.Profile, error) {
	endpoint := p.config.endpoint(p.config.ProfileURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", token.AccessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, authenticator.Errf(authenticator.KindUnauthorized, "access token was rejected")
	case resp.StatusCode >= 400:
		return nil, authenticator.Errf(authenticator.KindTransport, "profile endpoint returned %s", resp.Status)
	}

	var profile authenticator.Profile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&profile); err != nil {
		return nil, authenticator.Wrap(authenticator.KindTransport, err)
	}

	// shop.json wraps the fields in a single "shop" envelope
	if shop, isEnvelope := profile["shop"].(map[string]any); isEnvelope && len(profile) == 1 {
		profile = authenticator.Profile(shop)
	}

	return profile, nil
}

// rawParams flattens scalar response fields into the token extras
func rawParams(body []byte) map[string]string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	raw := make(map[string]string, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			raw[k] = val
		case float64:
			raw[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			raw[k] = strconv.FormatBool(val)
		}
	}
	return raw
}
