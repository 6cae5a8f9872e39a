// Package shamir implements byte-wise Shamir's Secret Sharing over GF(2^8).
// Every byte of the input is the constant term of an independent random
// polynomial of degree k-1; each share is that polynomial evaluated at a
// distinct nonzero point. Any k shares interpolate the polynomials back to
// the original bytes via Lagrange interpolation at x=0; fewer than k reveal
// nothing about them.
package shamir

import "github.com/shardvault/shardvault/pkg/shardvaulterr"

// Split divides secret into n shares, any k of which reconstruct it.
// k and n must satisfy 1 <= k <= n <= 255; secret must be nonempty.
//
// k=1 is the degenerate case: every coefficient is zero, so every share's Y
// equals the secret bytes verbatim.
func Split(secret []byte, k, n int, setID SetID) ([]RawShare, error) {
	if k <= 0 || n <= 0 || k > n || n > 255 {
		return nil, ErrInvalidKAndN
	}
	if len(secret) == 0 {
		return nil, ErrSecretEmpty
	}

	shares := make([]RawShare, n)
	for i := range shares {
		shares[i] = RawShare{
			SetID: setID,
			K:     k,
			N:     n,
			X:     byte(i + 1),
			Y:     make([]byte, len(secret)),
		}
	}

	// Independent random coefficients per byte position: reusing a
	// polynomial across byte positions would let k-1 shares leak
	// correlations between secret bytes.
	coeffs := make([]byte, k-1)
	for byteIdx, secretByte := range secret {
		if k > 1 {
			fresh, err := randomBytes(k - 1)
			if err != nil {
				return nil, shardvaulterr.Wrap(shardvaulterr.KindCrypto, err, "generate polynomial coefficients")
			}
			copy(coeffs, fresh)
		}

		for i := range shares {
			shares[i].Y[byteIdx] = evalPolynomial(secretByte, coeffs, shares[i].X)
		}
	}

	return shares, nil
}

// evalPolynomial evaluates f(x) = constant + coeffs[0]*x + coeffs[1]*x^2 + ...
// in GF(256).
func evalPolynomial(constant byte, coeffs []byte, x byte) byte {
	result := constant
	xPow := x
	for j, c := range coeffs {
		result = gfAdd(result, gfMul(c, xPow))
		if j < len(coeffs)-1 {
			xPow = gfMul(xPow, x)
		}
	}
	return result
}

// Combine reconstructs the secret from shares. At least k of the shares'
// declared threshold must be present, all must agree on SetID/K/N/payload
// length, and all X coordinates must be distinct and nonzero. Shares beyond
// k are permitted: they are checked for metadata consistency, but only the
// first k are interpolated, so a corrupted extra share is not detected here.
func Combine(shares []RawShare) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	if err := validateSiblings(shares); err != nil {
		return nil, err
	}

	k := shares[0].K
	if len(shares) < k {
		return nil, ErrNotEnoughShares
	}

	return interpolate(shares[:k])
}

func validateSiblings(shares []RawShare) error {
	first := shares[0]
	secretLen := len(first.Y)
	seenX := make(map[byte]bool, len(shares))

	for _, s := range shares {
		if s.SetID != first.SetID || s.K != first.K || s.N != first.N || len(s.Y) != secretLen {
			return ErrInconsistentMetadata
		}
		if s.X == 0 {
			return ErrInvalidX
		}
		if seenX[s.X] {
			return ErrDuplicateX
		}
		seenX[s.X] = true
	}
	return nil
}

// interpolate recovers f(0) for every byte position via Lagrange
// interpolation over exactly the given shares.
func interpolate(shares []RawShare) ([]byte, error) {
	weights := make([]byte, len(shares))
	for i, si := range shares {
		weight := byte(1)
		for j, sj := range shares {
			if i == j {
				continue
			}
			// Lagrange basis at x=0: product over m!=i of x_m / (x_m - x_i).
			denom := gfSub(sj.X, si.X)
			factor, err := gfDiv(sj.X, denom)
			if err != nil {
				return nil, shardvaulterr.Wrap(shardvaulterr.KindDivisionByZero, err, "lagrange interpolation")
			}
			weight = gfMul(weight, factor)
		}
		weights[i] = weight
	}

	secretLen := len(shares[0].Y)
	secret := make([]byte, secretLen)
	for i := 0; i < secretLen; i++ {
		var val byte
		for j, s := range shares {
			val = gfAdd(val, gfMul(s.Y[i], weights[j]))
		}
		secret[i] = val
	}
	return secret, nil
}
