// Package resource orchestrates the registry, the storage backends, and the
// content classifier behind the four operations the protocol host calls:
// list, read-by-URI, register, and arbitrary fetch.
//
// It owns the ipfs:// URI scheme. URIs are derived on demand from content
// identifiers and never stored; parseURI(formatURI(id)) == id for every
// valid identifier.
//
// Reading does not require registration: any syntactically valid CID can be
// read, the registry only drives discoverability. For registered CIDs the
// declared MIME type, when present, overrides the gateway's Content-Type as
// the classification hint.
//
// Registration emits a fire-and-forget change notification through the
// injected ChangeNotifier so the host can refresh its resource list. The
// service never waits on or retries delivery; a missed notification costs
// display staleness, nothing else.
package resource
