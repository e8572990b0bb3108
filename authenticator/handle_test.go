package authenticator

import (
	"context"
	"errors"
	"net/url"
	"testing"
)

// stubProvider records which operations were invoked
type stubProvider struct {
	exchanges int
	fetches   int

	token   *Token
	profile Profile
	err     error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) GetAuthURL(req Request) (string, error) {
	u := url.Values{}
	u.Set("scope", "default_scope")
	if len(req.Scopes) > 0 {
		u.Set("scope", req.Scopes[0])
	}
	if req.State != "" {
		u.Set("state", req.State)
	}
	return "https://example.test/authorize?" + u.Encode(), nil
}

func (s *stubProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	s.exchanges++
	if s.err != nil {
		return nil, s.err
	}
	return s.token, nil
}

func (s *stubProvider) GetProfile(ctx context.Context, token *Token) (Profile, error) {
	s.fetches++
	return s.profile, nil
}

func (s *stubProvider) GetInfo(profile Profile) Info {
	return Info{UID: profile.String("login"), Raw: profile}
}

func TestHandleCallbackMissingCode(t *testing.T) {
	stub := &stubProvider{}

	result, err := HandleCallback(context.Background(), stub, url.Values{})
	if result != nil {
		t.Error("Expected no result for callback without code")
	}
	if KindOf(err) != KindMissingCode {
		t.Errorf("Expected missing_code, got %v", err)
	}

	// No outbound call may happen before the code check
	if stub.exchanges != 0 || stub.fetches != 0 {
		t.Errorf("Expected no provider calls, got %d exchanges and %d fetches", stub.exchanges, stub.fetches)
	}
}

func TestHandleCallbackSuccess(t *testing.T) {
	stub := &stubProvider{
		token: &Token{
			AccessToken: "tok123",
			Raw:         map[string]string{"scope": "read_products,read_orders"},
		},
		profile: Profile{"login": "alice", "email": "a@x.com"},
	}

	params := url.Values{}
	params.Set("code", "code123")

	result, err := HandleCallback(context.Background(), stub, params)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if result.Credentials.Token != "tok123" {
		t.Errorf("Expected token tok123, got %s", result.Credentials.Token)
	}
	if result.Info.UID != "alice" {
		t.Errorf("Expected UID alice, got %s", result.Info.UID)
	}
	if result.RawProfile.String("email") != "a@x.com" {
		t.Errorf("Expected raw profile email, got %v", result.RawProfile)
	}
	if stub.exchanges != 1 || stub.fetches != 1 {
		t.Errorf("Expected exactly one exchange and one fetch, got %d and %d", stub.exchanges, stub.fetches)
	}
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	stub := &stubProvider{err: Errf(KindOAuth, "invalid_grant")}

	params := url.Values{}
	params.Set("code", "bad")

	_, err := HandleCallback(context.Background(), stub, params)
	if KindOf(err) != KindOAuth {
		t.Errorf("Expected oauth_error, got %v", err)
	}
	if stub.fetches != 0 {
		t.Error("Expected no profile fetch after a failed exchange")
	}
}

func TestHandleRequestOverrides(t *testing.T) {
	stub := &stubProvider{}

	params := url.Values{}
	params.Set("scope", "write_orders")
	params.Set("state", "abc")

	authURL, err := HandleRequest(stub, params)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("Expected a well-formed URL, got %v", err)
	}
	if u.Query().Get("scope") != "write_orders" {
		t.Errorf("Expected scope override, got %s", u.Query().Get("scope"))
	}
	if u.Query().Get("state") != "abc" {
		t.Errorf("Expected state abc, got %s", u.Query().Get("state"))
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(Errf(KindTransport, "boom")) != KindTransport {
		t.Error("Expected transport_error kind")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("Expected empty kind for untagged error")
	}

	wrapped := Wrap(KindTransport, errors.New("connection refused"))
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("Expected wrapped error to unwrap to its cause")
	}
}
