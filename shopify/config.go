package shopify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alistairstead/ueberauth-shopify/authenticator"
)

// Default endpoint templates. {shop} is replaced with the fully
// qualified shop domain.
const (
	DefaultAuthorizeURL = "https://{shop}/admin/oauth/authorize"
	DefaultTokenURL     = "https://{shop}/admin/oauth/access_token"
	DefaultProfileURL   = "https://{shop}/admin/shop.json"

	// DefaultUIDField selects the profile field used as the unique
	// identifier when none is configured.
	DefaultUIDField = "login"
)

// DefaultScopes is the permission list requested when neither the
// configuration nor the login request names any.
var DefaultScopes = []string{"read_products", "read_orders"}

var shopDomainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*\.myshopify\.com$`)

// Config holds the Shopify app credentials and endpoint templates.
// It is resolved once at startup and never mutated afterwards, so a
// single Config is safe to share across concurrent logins.
type Config struct {
	ClientID     string   `env:"SHOPIFY_CLIENT_ID"`
	ClientSecret string   `env:"SHOPIFY_CLIENT_SECRET"`
	Shop         string   `env:"SHOPIFY_SHOP"`
	RedirectURI  string   `env:"SHOPIFY_REDIRECT_URI"`
	Scopes       []string `env:"SHOPIFY_SCOPE" envSeparator:"," envDefault:"read_products,read_orders"`
	UIDField     string   `env:"SHOPIFY_UID_FIELD" envDefault:"login"`

	AuthorizeURL string `env:"SHOPIFY_AUTHORIZE_URL" envDefault:"https://{shop}/admin/oauth/authorize"`
	TokenURL     string `env:"SHOPIFY_TOKEN_URL" envDefault:"https://{shop}/admin/oauth/access_token"`
	ProfileURL   string `env:"SHOPIFY_PROFILE_URL" envDefault:"https://{shop}/admin/shop.json"`
}

// ConfigFromEnv resolves the configuration from environment
// variables, applying the declared defaults.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse shopify config: %w", err)
	}
	return cfg, nil
}

// ShopHost returns the fully qualified shop domain. A bare shop
// handle gains the .myshopify.com suffix.
func (c Config) ShopHost() string {
	shop := strings.TrimSpace(c.Shop)
	if shop == "" {
		return ""
	}
	if !strings.Contains(shop, ".") {
		shop += ".myshopify.com"
	}
	return shop
}

// endpoint interpolates the shop domain into an endpoint template
func (c Config) endpoint(template string) string {
	return strings.ReplaceAll(template, "{shop}", c.ShopHost())
}

// applyDefaults fills zero-valued optional fields, so a Config built
// in code behaves the same as one parsed from the environment.
func (c *Config) applyDefaults() {
	if len(c.Scopes) == 0 {
		c.Scopes = append([]string(nil), DefaultScopes...)
	}
	if c.UIDField == "" {
		c.UIDField = DefaultUIDField
	}
	if c.AuthorizeURL == "" {
		c.AuthorizeURL = DefaultAuthorizeURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.ProfileURL == "" {
		c.ProfileURL = DefaultProfileURL
	}
}

func (c Config) validate() error {
	if c.Shop == "" {
		return authenticator.Errf(authenticator.KindConfig, "shop domain is required")
	}
	if c.ClientID == "" {
		return authenticator.Errf(authenticator.KindConfig, "client ID is required")
	}
	if c.ClientSecret == "" {
		return authenticator.Errf(authenticator.KindConfig, "client secret is required")
	}
	if c.RedirectURI == "" {
		return authenticator.Errf(authenticator.KindConfig, "redirect URI is required")
	}
	if !shopDomainPattern.MatchString(c.ShopHost()) {
		return authenticator.Errf(authenticator.KindConfig, "invalid shop domain %q", c.Shop)
	}
	return nil
}
