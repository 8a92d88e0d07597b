// Package content classifies raw fetched bytes as text or binary and
// produces the transport representation handed back to the protocol host.
//
// Classification is a heuristic, not a guarantee. A declared MIME type (when
// the gateway or the registrant supplied one) is used as a hint: text
// families are decoded as UTF-8, everything else is base64-encoded. A hint
// that turns out to be wrong never causes an error; the payload silently
// falls back to binary handling. Classify is a total function.
//
// The result is a tagged two-variant value (Text or Binary) rather than a
// boolean plus an implicit encoding convention, so tests can assert on the
// variant directly.
package content
