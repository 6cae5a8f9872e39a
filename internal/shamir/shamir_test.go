package shamir

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func mustSetID(t *testing.T) SetID {
	t.Helper()
	id, err := NewSetID()
	if err != nil {
		t.Fatalf("NewSetID: %v", err)
	}
	return id
}

//nolint:gocognit,gocyclo // table test with many sub-cases
func TestSplitCombine(t *testing.T) {
	tests := []struct {
		name      string
		secretLen int
		k, n      int
	}{
		{"ShortSecret", 16, 3, 5},
		{"LongSecret", 64, 3, 5},
		{"Threshold2", 2, 2, 5},
		{"ThresholdSameAsN", 5, 5, 5},
		{"MaxShares", 3, 255, 255},
		{"MinShares", 1, 1, 1},
		{"MinK", 2, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := make([]byte, tt.secretLen)
			if _, err := rand.Read(secret); err != nil {
				t.Fatalf("rand.Read: %v", err)
			}

			setID := mustSetID(t)
			shares, err := Split(secret, tt.k, tt.n, setID)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if len(shares) != tt.n {
				t.Fatalf("expected %d shares, got %d", tt.n, len(shares))
			}

			seen := make(map[byte]bool)
			for _, s := range shares {
				if s.X == 0 {
					t.Error("share x must be nonzero")
				}
				if seen[s.X] {
					t.Error("duplicate x among generated shares")
				}
				seen[s.X] = true
				if s.SetID != setID {
					t.Error("share set id mismatch")
				}
			}

			recovered, err := Combine(shares)
			if err != nil {
				t.Fatalf("Combine (all shares) failed: %v", err)
			}
			if !bytes.Equal(secret, recovered) {
				t.Errorf("recovered mismatch: got %x want %x", recovered, secret)
			}

			subset := shares[:tt.k]
			recoveredSub, err := Combine(subset)
			if err != nil {
				t.Fatalf("Combine (k shares) failed: %v", err)
			}
			if !bytes.Equal(secret, recoveredSub) {
				t.Errorf("recovered (subset) mismatch")
			}

			lastK := shares[len(shares)-tt.k:]
			recoveredLast, err := Combine(lastK)
			if err != nil {
				t.Fatalf("Combine (last k shares) failed: %v", err)
			}
			if !bytes.Equal(secret, recoveredLast) {
				t.Errorf("recovered (last k) mismatch")
			}
		})
	}
}

func TestSplit_DegenerateK1AllSharesEqualSecret(t *testing.T) {
	secret := []byte("degenerate threshold")
	shares, err := Split(secret, 1, 4, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	for _, s := range shares {
		if !bytes.Equal(s.Y, secret) {
			t.Errorf("k=1 share %d should equal secret verbatim, got %x", s.X, s.Y)
		}
	}
}

func TestCombine_NotEnoughShares(t *testing.T) {
	secret := []byte("test secret")
	shares, err := Split(secret, 3, 5, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	_, err = Combine(shares[:2])
	if !errors.Is(err, ErrNotEnoughShares) {
		t.Errorf("expected ErrNotEnoughShares, got %v", err)
	}
}

func TestCombine_DuplicateX(t *testing.T) {
	secret := []byte("test secret")
	shares, err := Split(secret, 3, 5, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	dup := []RawShare{shares[0], shares[0], shares[1]}
	_, err = Combine(dup)
	if !errors.Is(err, ErrDuplicateX) {
		t.Errorf("expected ErrDuplicateX, got %v", err)
	}
}

func TestCombine_InvalidX(t *testing.T) {
	secret := []byte("test secret")
	shares, err := Split(secret, 2, 3, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	shares[0].X = 0
	_, err = Combine(shares)
	if !errors.Is(err, ErrInvalidX) {
		t.Errorf("expected ErrInvalidX, got %v", err)
	}
}

func TestCombine_InconsistentMetadata(t *testing.T) {
	secret := []byte("same secret")
	s1, err := Split(secret, 2, 3, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	s2, err := Split(secret, 2, 3, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	mixed := []RawShare{s1[0], s2[1]}
	_, err = Combine(mixed)
	if !errors.Is(err, ErrInconsistentMetadata) {
		t.Errorf("expected ErrInconsistentMetadata, got %v", err)
	}
}

func TestSplit_InvalidKAndN(t *testing.T) {
	secret := []byte("secret")
	setID := mustSetID(t)

	cases := []struct {
		name string
		k, n int
	}{
		{"k=0", 0, 5},
		{"n=0", 3, 0},
		{"k>n", 4, 3},
		{"n>255", 3, 300},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Split(secret, c.k, c.n, setID); !errors.Is(err, ErrInvalidKAndN) {
				t.Errorf("expected ErrInvalidKAndN, got %v", err)
			}
		})
	}
}

func TestSplit_EmptySecret(t *testing.T) {
	if _, err := Split(nil, 2, 3, mustSetID(t)); !errors.Is(err, ErrSecretEmpty) {
		t.Errorf("expected ErrSecretEmpty, got %v", err)
	}
}

func TestTamperedShareYieldsWrongSecret(t *testing.T) {
	secret := []byte("test secret")
	shares, err := Split(secret, 3, 5, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	tampered := make([]RawShare, 3)
	copy(tampered, shares[:3])
	tampered[2].Y = append([]byte(nil), tampered[2].Y...)
	tampered[2].Y[0] ^= 0xFF

	rec, err := Combine(tampered)
	if err != nil {
		t.Fatalf("Combine should not error on tampered share: %v", err)
	}
	if bytes.Equal(rec, secret) {
		t.Error("tampered share unexpectedly reconstructed the correct secret")
	}
}

func TestGF256VectorAndProperties(t *testing.T) {
	// 0x57 * 0x13 = 0xFE is the canonical AES-field multiplication spot check.
	if got := gfMul(0x57, 0x13); got != 0xFE {
		t.Errorf("gfMul(0x57,0x13) = %#x, want 0xfe", got)
	}

	if gfAdd(1, 2) != 3 {
		t.Error("gfAdd(1,2) != 3")
	}

	a, b, c := byte(3), byte(4), byte(5)
	lhs := gfMul(a, gfAdd(b, c))
	rhs := gfAdd(gfMul(a, b), gfMul(a, c))
	if lhs != rhs {
		t.Errorf("distributivity fail: %d != %d", lhs, rhs)
	}

	for i := 1; i < 256; i++ {
		x := byte(i)
		inv, err := gfInv(x)
		if err != nil {
			t.Fatalf("gfInv(%d) unexpected error: %v", x, err)
		}
		if gfMul(x, inv) != 1 {
			t.Errorf("inverse fail for %d", x)
		}
	}

	if _, err := gfInv(0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestFuzzSplitCombine(t *testing.T) {
	for i := 0; i < 500; i++ {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			t.Fatalf("rand.Read iter %d: %v", i, err)
		}

		b := make([]byte, 2)
		if _, err := rand.Read(b); err != nil {
			t.Fatalf("rand.Read params iter %d: %v", i, err)
		}
		n := (int(b[0]) % 49) + 2
		k := (int(b[1]) % (n - 1)) + 1
		if k > n {
			k = n
		}

		shares, err := Split(secret, k, n, mustSetID(t))
		if err != nil {
			t.Fatalf("Split iter %d (k=%d n=%d): %v", i, k, n, err)
		}

		rec, err := Combine(shares[:k])
		if err != nil {
			t.Fatalf("Combine iter %d: %v", i, err)
		}
		if !bytes.Equal(secret, rec) {
			t.Fatalf("mismatch iter %d", i)
		}
	}
}

func TestDegenerateSingleShare(t *testing.T) {
	secret := []byte("k=1 n=1")
	shares, err := Split(secret, 1, 1, mustSetID(t))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(shares) != 1 {
		t.Fatalf("expected 1 share, got %d", len(shares))
	}
	rec, err := Combine(shares)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if !bytes.Equal(rec, secret) {
		t.Errorf("combine(k=1,n=1) mismatch")
	}
}
