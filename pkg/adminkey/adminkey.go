// Package adminkey derives and checks the admin API key from the server
// secret. The key is deterministic, so an operator can recompute it from
// the configured secret without any stored credential.
package adminkey

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidKey = errors.New("invalid admin key")

const keyLabel = "group-calendar-scheduler/admin"

// Derive produces the admin key for a server secret: URL-safe base64 of
// HMAC-SHA256 over a fixed label, padding trimmed.
func Derive(secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(keyLabel))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// Verify checks a presented key in constant time.
func Verify(presented, secret string) error {
	expected := Derive(secret)
	if !hmac.Equal([]byte(presented), []byte(expected)) {
		return ErrInvalidKey
	}
	return nil
}
