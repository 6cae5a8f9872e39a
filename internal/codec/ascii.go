package codec

import (
	"crypto/sha256"
	"encoding/base64"
	"math/big"
	"strings"

	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		idx[base58Alphabet[i]] = int8(i)
	}
	return idx
}()

// doubleSHA256 computes SHA256(SHA256(data)), the Base58Check checksum
// input (spec §4.6).
func doubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

func base58Encode(input []byte) string {
	leadingZeros := 0
	for _, b := range input {
		if b == 0 {
			leadingZeros++
		} else {
			break
		}
	}

	x := new(big.Int).SetBytes(input)
	base := big.NewInt(58)
	zero := big.NewInt(0)
	mod := new(big.Int)

	var result []byte
	for x.Cmp(zero) > 0 {
		x.DivMod(x, base, mod)
		result = append(result, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < leadingZeros; i++ {
		result = append(result, base58Alphabet[0])
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return string(result)
}

func base58Decode(s string) ([]byte, error) {
	leadingZeros := 0
	for i := 0; i < len(s); i++ {
		if s[i] == base58Alphabet[0] {
			leadingZeros++
		} else {
			break
		}
	}

	x := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		v := base58Index[s[i]]
		if v < 0 {
			return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "invalid base58 character")
		}
		x.Mul(x, base)
		x.Add(x, big.NewInt(int64(v)))
	}

	decoded := x.Bytes()
	out := make([]byte, leadingZeros+len(decoded))
	copy(out[leadingZeros:], decoded)
	return out, nil
}

// EncodeBase58Check appends a 4-byte double-SHA256 checksum and Base58
// encodes the result (spec §4.6).
func EncodeBase58Check(payload []byte) string {
	checksum := doubleSHA256(payload)[:4]
	full := make([]byte, 0, len(payload)+4)
	full = append(full, payload...)
	full = append(full, checksum...)
	return base58Encode(full)
}

// DecodeBase58Check reverses EncodeBase58Check, verifying the checksum.
func DecodeBase58Check(s string) ([]byte, error) {
	full, err := base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(full) < 4 {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "base58check payload too short")
	}
	payload := full[:len(full)-4]
	checksum := full[len(full)-4:]
	want := doubleSHA256(payload)[:4]
	if string(checksum) != string(want) {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "base58check checksum mismatch")
	}
	return payload, nil
}

// EncodeBase64URL encodes payload with the URL-safe alphabet and no padding
// (spec §4.6).
func EncodeBase64URL(payload []byte) string {
	return base64.RawURLEncoding.EncodeToString(payload)
}

// DecodeBase64URL reverses EncodeBase64URL.
func DecodeBase64URL(s string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, shardvaulterr.Wrap(shardvaulterr.KindEncoding, err, "invalid base64url")
	}
	return decoded, nil
}
