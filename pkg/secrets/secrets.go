// Package secrets generates random secrets for session signing.
package secrets

import (
	"crypto/rand"
	"encoding/base64"

	dErrors "payzee/pkg/domain-errors"
)

// Generate returns 32 random bytes, base64url encoded without padding.
func Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate secret")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
