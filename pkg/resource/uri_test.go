package resource

import (
	"errors"
	"testing"
)

func TestURIRoundTrip(t *testing.T) {
	ids := []string{
		"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		"QmExample123",
	}
	for _, id := range ids {
		uri := FormatURI(id)
		got, err := ParseURI(uri)
		if err != nil {
			t.Fatalf("ParseURI(%q) error: %v", uri, err)
		}
		if got != id {
			t.Fatalf("round trip mismatch: %q -> %q", id, got)
		}
	}
}

func TestParseURI_WrongScheme(t *testing.T) {
	for _, uri := range []string{
		"http://example.com/QmA",
		"ipns://QmA",
		"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"",
	} {
		if _, err := ParseURI(uri); !errors.Is(err, ErrInvalidURI) {
			t.Fatalf("ParseURI(%q) = %v, want ErrInvalidURI", uri, err)
		}
	}
}

func TestParseURI_EmptyIdentifier(t *testing.T) {
	if _, err := ParseURI("ipfs://"); !errors.Is(err, ErrInvalidURI) {
		t.Fatal("empty identifier must be rejected")
	}
}
