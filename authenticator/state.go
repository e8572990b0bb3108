package authenticator

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

// GenerateState generates a random state value for CSRF protection
func GenerateState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// VerifyState compares the state sent on the authorize request with
// the one delivered to the callback. The caller owns storing the
// pending state between the two requests; this is the explicit check
// it runs before handling the callback.
func VerifyState(want, got string) error {
	if want == "" || got == "" {
		return Errf(KindInvalidState, "state parameter missing")
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		return Errf(KindInvalidState, "state parameter mismatch")
	}
	return nil
}
