// Package cidutil provides lexical validation and derivation helpers for
// IPFS content identifiers (CIDs).
//
// Validation is a syntactic gate only: it checks that a candidate string is
// non-empty and uses the alphabet of a known CID encoding. It never touches
// the network and never verifies that a CID actually matches any content.
// The point is to fail fast before an expensive gateway round trip.
//
// # Accepted Forms
//
// CIDv0 (legacy):
//   - Starts with "Qm"
//   - 46 characters, base58btc
//   - Example: QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG
//
// CIDv1 (modern):
//   - Multibase-prefixed, commonly base32 ("bafy...")
//   - Variable length
//   - Example: bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi
//
// # Usage
//
//	id, err := cidutil.Validate(" QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG ")
//	if err != nil {
//		// reject before any network call
//	}
//
// The package also derives CIDv1 (raw + sha2-256) identifiers from byte
// payloads, used for best-effort integrity logging after a gateway fetch.
package cidutil
