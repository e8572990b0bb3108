package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alistairstead/ueberauth-shopify/authenticator"
)

func TestGetInfo(t *testing.T) {
	p := testProvider(t, nil)

	profile := authenticator.Profile{
		"login":            "alice",
		"name":             "Example Store",
		"email":            "a@x.com",
		"city":             "Ottawa",
		"country_name":     "Canada",
		"domain":           "shop.example.com",
		"myshopify_domain": "example.myshopify.com",
		"plan_name":        "basic", // unknown field, must survive in Raw
	}

	info := p.GetInfo(profile)
	assert.Equal(t, "alice", info.UID)
	assert.Equal(t, "Example Store", info.Name)
	assert.Equal(t, "a@x.com", info.Email)
	assert.Equal(t, "Ottawa, Canada", info.Location)
	assert.Equal(t, "shop.example.com", info.URLs["domain"])
	assert.Equal(t, "example.myshopify.com", info.URLs["myshopify_domain"])
	assert.Equal(t, "basic", info.Raw.String("plan_name"))
}

func TestGetInfoCustomUIDField(t *testing.T) {
	cfg := Config{
		ClientID:     "client123",
		ClientSecret: "secret456",
		Shop:         "example",
		RedirectURI:  "https://app.example.com/callback",
		UIDField:     "myshopify_domain",
	}
	p, err := New(cfg)
	require.NoError(t, err)

	info := p.GetInfo(authenticator.Profile{
		"login":            "alice",
		"myshopify_domain": "example.myshopify.com",
	})
	assert.Equal(t, "example.myshopify.com", info.UID)
}

func TestGetInfoSparseProfile(t *testing.T) {
	p := testProvider(t, nil)

	info := p.GetInfo(authenticator.Profile{"login": "alice"})
	assert.Equal(t, "alice", info.UID)
	assert.Empty(t, info.Name)
	assert.Empty(t, info.Location)
	assert.Nil(t, info.URLs)
	assert.Equal(t, "alice", info.Raw.String("login"))
}
