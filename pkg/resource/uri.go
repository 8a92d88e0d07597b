package resource

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme is the URI prefix under which content identifiers are exposed.
const Scheme = "ipfs://"

// ErrInvalidURI is returned when a resource URI lacks the ipfs:// scheme or
// carries an empty identifier.
var ErrInvalidURI = errors.New("invalid resource URI")

// FormatURI derives the resource URI for a content identifier.
func FormatURI(id string) string {
	return Scheme + id
}

// ParseURI extracts the content identifier from an ipfs:// URI. The scheme
// prefix is mandatory and the identifier must be non-empty.
func ParseURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return "", fmt.Errorf("%w: %q lacks %s prefix", ErrInvalidURI, uri, Scheme)
	}
	id := uri[len(Scheme):]
	if id == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidURI)
	}
	return id, nil
}
