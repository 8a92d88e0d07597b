// Package storage retrieves raw content bytes for a CID from IPFS.
//
// All retrieval is gateway-mediated: the server never joins the IPFS network
// itself. Two backends are supported:
//
// HTTP gateways (always available):
//   - Ordered list of URL templates, e.g. "https://ipfs.io/ipfs/{cid}"
//   - Strict in-order fallback on error, bad status, or timeout
//   - Each attempt bounded by its own timeout
//
// Kubo node API (optional):
//   - `ipfs cat` reads and `ipfs add` uploads via the node's HTTP API
//   - Preferred read path when configured (faster, no rate limits)
//
// # Failure Taxonomy
//
// A gateway fetch only fails after every configured gateway has been tried.
// The returned error carries the category that predominated:
//
//   - ErrContentNotFound: every gateway answered with a not-found status
//   - ErrTimeout: every attempt ran into its deadline
//   - ErrGatewayUnreachable: anything else (mixed failures included)
//
// Check with errors.Is; the concrete error wraps per-gateway detail.
//
// # Usage
//
//	client := storage.NewClient(cfg.Gateways, nil, cfg.Timeouts)
//	data, mimeType, err := client.Fetch(ctx, "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
//
// The MIME type is whatever the gateway declared, returned as a
// classification hint only; node reads have no MIME information and return
// an empty hint.
//
// # Integrity
//
// For CIDv1 raw+sha2-256 identifiers the fetched bytes are re-hashed and
// compared against the requested CID. A mismatch is logged, never surfaced:
// content verification is out of scope, the check only aids debugging of
// misbehaving gateways.
package storage
