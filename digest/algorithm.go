package digest

import (
	"crypto"
	"errors"
	"fmt"
	"strings"

	// Register the SHA implementations with crypto.Hash.
	_ "crypto/sha1" //nolint:gosec // SHA-1 is a supported digest, not a signature
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// ErrUnsupportedAlgorithm is returned for algorithm names or
// values outside the enumerated set.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm selects the hash function used by Sum.
type Algorithm int

// Supported algorithms. The zero value is SHA1, which matches
// the default selection of the interactive tool.
const (
	SHA1 Algorithm = iota
	SHA256
	SHA384
	SHA512
)

// Algorithms lists every supported algorithm in ascending
// digest size.
var Algorithms = []Algorithm{SHA1, SHA256, SHA384, SHA512}

var algorithmNames = map[Algorithm]string{
	SHA1:   "SHA-1",
	SHA256: "SHA-256",
	SHA384: "SHA-384",
	SHA512: "SHA-512",
}

var cryptoHashes = map[Algorithm]crypto.Hash{
	SHA1:   crypto.SHA1,
	SHA256: crypto.SHA256,
	SHA384: crypto.SHA384,
	SHA512: crypto.SHA512,
}

// ParseAlgorithm maps a user supplied name to an Algorithm.
// Matching ignores case and dashes, so "SHA-256", "sha256"
// and "Sha-256" are equivalent.
func ParseAlgorithm(name string) (Algorithm, error) {
	const errCtx = "parsing algorithm"

	key := strings.ReplaceAll(
		strings.ToUpper(strings.TrimSpace(name)), "-", "",
	)

	for alg, canonical := range algorithmNames {
		if strings.ReplaceAll(canonical, "-", "") == key {
			return alg, nil
		}
	}

	return 0, fmt.Errorf(
		"%s: %w %q", errCtx, ErrUnsupportedAlgorithm, name,
	)
}

// String returns the canonical name, e.g. "SHA-256".
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the enumerated values.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]

	return ok
}

// Size returns the digest length in bytes, or 0 for an
// invalid algorithm.
func (a Algorithm) Size() int {
	ch, ok := cryptoHashes[a]
	if !ok {
		return 0
	}

	return ch.Size()
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf(
			"%w: %d", ErrUnsupportedAlgorithm, int(a),
		)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = alg

	return nil
}
