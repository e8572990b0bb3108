package authenticator

import (
	"context"
	"net/url"
)

// HandleRequest resolves scope and state overrides from the inbound
// query parameters and returns the URL to redirect the user to.
func HandleRequest(p Provider, params url.Values) (string, error) {
	req := Request{State: params.Get("state")}
	if scope := params.Get("scope"); scope != "" {
		req.Scopes = SplitScopes(scope)
	}
	return p.GetAuthURL(req)
}

// HandleCallback runs the code exchange and profile fetch for one
// callback and assembles the normalized result. A callback without a
// code fails before any outbound call is made.
func HandleCallback(ctx context.Context, p Provider, params url.Values) (*Result, error) {
	code := params.Get("code")
	if code == "" {
		return nil, Errf(KindMissingCode, "callback is missing the code parameter")
	}

	token, err := p.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := p.GetProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Result{
		Credentials: token.Credentials(),
		Info:        p.GetInfo(profile),
		RawToken:    token,
		RawProfile:  profile,
	}, nil
}
