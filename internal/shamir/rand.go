package shamir

import (
	"crypto/rand"
	"io"
)

// Reader is the cryptographically secure random source used for polynomial
// coefficients and set identifiers. It wraps crypto/rand.Reader so tests can
// substitute a seeded, deterministic source; production code must never
// replace it.
//
//nolint:gochecknoglobals // narrow RNG hook for deterministic tests
var Reader io.Reader = rand.Reader

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
