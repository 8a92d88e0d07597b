// Package registry holds the in-memory catalog of IPFS content identifiers
// the server has chosen to surface as resources.
//
// The registry is an index, not a content store: it records a CID together
// with display metadata (name, description, declared MIME type) and makes no
// attempt to cache or verify the content behind it. Any CID can be fetched
// whether or not it is registered; registration only affects discoverability.
//
// Entries live for the process lifetime. There is no replace-by-re-add: a
// second registration of the same identifier fails with
// ErrDuplicateIdentifier, so metadata is never silently clobbered. Listing
// returns entries in registration order.
//
// A Registry is a lifecycle-scoped object constructed with New and passed by
// handle into the resource service; there is no package-level state, so
// multiple instances can coexist in tests.
//
// All mutation is serialized under an internal lock and holds it only for
// the in-memory insert; reads observe a consistent snapshot and may run
// concurrently with each other.
package registry
