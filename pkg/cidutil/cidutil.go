package cidutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ErrInvalid is returned when a candidate string is not a plausible CID.
// Use errors.Is to detect it through wrapping.
var ErrInvalid = errors.New("invalid content identifier")

// Validate checks that candidate is a plausible content identifier and
// returns it with surrounding whitespace removed.
//
// The check is lexical only: empty or whitespace-only input and characters
// outside the multibase alphabets (anything non-alphanumeric) are rejected.
// Whether the string decodes as a well-formed CID is not checked here; a
// syntactically clean but unknown identifier simply yields a gateway miss
// later. No cryptographic or network verification is performed.
func Validate(candidate string) (string, error) {
	id := strings.TrimSpace(candidate)
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalid)
	}

	for _, r := range id {
		if !isAlphanumeric(r) {
			return "", fmt.Errorf("%w: character %q not in CID alphabet", ErrInvalid, r)
		}
	}
	return id, nil
}

// isAlphanumeric reports whether r belongs to the ASCII alphanumeric set.
// Every multibase encoding in common use for CIDs (base58btc, base32,
// base36) draws from this set.
func isAlphanumeric(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// CIDv1RawSHA256 returns the CIDv1 string using the "raw" multicodec and a
// sha2-256 multihash for data. Returns the empty string only on the
// unreachable multihash error path.
func CIDv1RawSHA256(data []byte) string {
	c, err := CIDv1RawSHA256CID(data)
	if err != nil {
		return ""
	}
	return c.String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// VerifiesRaw reports whether id is a CIDv1 with the raw codec and a
// sha2-256 multihash, i.e. an identifier whose content bytes can be checked
// by recomputing the hash locally. Other CIDs (CIDv0, dag-pb, ...) encode
// DAG structure and cannot be verified from a flat gateway payload.
func VerifiesRaw(id cid.Cid) bool {
	if id.Version() != 1 || id.Type() != cid.Raw {
		return false
	}
	dec, err := multihash.Decode(id.Hash())
	if err != nil {
		return false
	}
	return dec.Code == multihash.SHA2_256
}
