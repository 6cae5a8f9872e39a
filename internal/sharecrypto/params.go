package sharecrypto

import "github.com/shardvault/shardvault/pkg/shardvaulterr"

// SaltLen and NonceLen are the fixed sizes serialized into a SharePacket's
// optional crypto-params block (spec §3 CryptoParams, §4.5).
const (
	SaltLen  = 16
	NonceLen = 12

	// KeyLen is the derived key size consumed by ChaCha20-Poly1305.
	KeyLen = 32
)

// Default Argon2id cost parameters (spec §4.3).
const (
	DefaultMemKiB      uint32 = 65536
	DefaultTime        uint32 = 3
	DefaultParallelism uint32 = 1
)

// Params holds the per-set Argon2id/AEAD parameters that travel with every
// encrypted share so combine can re-derive the same key. All three cost
// fields must be nonzero; decoded packets may carry non-default costs
// (forward flexibility) as long as they satisfy that invariant.
type Params struct {
	Salt        [SaltLen]byte
	Nonce       [NonceLen]byte
	MemKiB      uint32
	Time        uint32
	Parallelism uint32
}

// Validate checks the nonzero-cost invariant (spec §3, §4.3).
func (p Params) Validate() error {
	if p.MemKiB == 0 || p.Time == 0 || p.Parallelism == 0 {
		return shardvaulterr.New(shardvaulterr.KindCrypto, "crypto params: cost fields must be nonzero")
	}
	return nil
}

// Equal reports whether two Params serialize identically. Used to enforce
// "identical across every share of an encrypted set" (spec §3) and to
// compare the "absence of crypto params" case (both nil).
func Equal(a, b *Params) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
