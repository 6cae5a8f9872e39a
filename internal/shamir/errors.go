package shamir

import "github.com/shardvault/shardvault/pkg/shardvaulterr"

// Sentinel errors, one per row of the engine's slice of the taxonomy
// (spec §7). Each wraps shardvaulterr.Kind so callers can branch with
// errors.Is/shardvaulterr.OfKind regardless of which package raised it.
var (
	// ErrInvalidKAndN is returned when k == 0, n == 0, or k > n.
	ErrInvalidKAndN = shardvaulterr.New(shardvaulterr.KindInvalidKAndN, "invalid threshold: require 1 <= k <= n <= 255")

	// ErrSecretEmpty is returned when the secret is empty.
	ErrSecretEmpty = shardvaulterr.New(shardvaulterr.KindInvalidInput, "secret must not be empty")

	// ErrNoShares is returned when Combine is called with zero shares.
	ErrNoShares = shardvaulterr.New(shardvaulterr.KindNotEnoughShares, "no shares provided")

	// ErrNotEnoughShares is returned when fewer than k shares are provided.
	ErrNotEnoughShares = shardvaulterr.New(shardvaulterr.KindNotEnoughShares, "fewer than k shares provided")

	// ErrInconsistentMetadata is returned when sibling shares disagree on
	// SetID, K, N, or payload length.
	ErrInconsistentMetadata = shardvaulterr.New(shardvaulterr.KindInconsistentMetadata, "shares disagree on set id, k, n, or payload length")

	// ErrInvalidX is returned when a share's X coordinate is 0.
	ErrInvalidX = shardvaulterr.New(shardvaulterr.KindInvalidX, "share x coordinate must be in [1,255]")

	// ErrDuplicateX is returned when two input shares carry the same X.
	ErrDuplicateX = shardvaulterr.New(shardvaulterr.KindDuplicateX, "duplicate share x coordinate")

	// ErrDivisionByZero is returned by field inversion of 0.
	ErrDivisionByZero = shardvaulterr.New(shardvaulterr.KindDivisionByZero, "division by zero in GF(256)")
)
