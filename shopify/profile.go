package shopify

import (
	"strings"

	"github.com/alistairstead/ueberauth-shopify/authenticator"
)

// urlFields are profile fields carried over into Info.URLs when set
var urlFields = []string{"domain", "myshopify_domain", "url", "html_url"}

// GetInfo maps the shop profile into the normalized record. The
// configured UID field selects the unique identifier; every field,
// known or not, stays reachable through Raw.
func (p *Provider) GetInfo(profile authenticator.Profile) authenticator.Info {
	info := authenticator.Info{
		UID:         profile.String(p.config.UIDField),
		Name:        profile.String("name"),
		Email:       profile.String("email"),
		Nickname:    profile.String("login"),
		Description: profile.String("description"),
		Image:       profile.String("avatar_url"),
		Location:    profile.String("location"),
		Raw:         profile,
	}

	// shop.json has no location field, but city and country
	if info.Location == "" {
		info.Location = joinNonEmpty(", ", profile.String("city"), profile.String("country_name"))
	}

	urls := make(map[string]string)
	for _, key := range urlFields {
		if v := profile.String(key); v != "" {
			urls[key] = v
		}
	}
	if len(urls) > 0 {
		info.URLs = urls
	}

	return info
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
