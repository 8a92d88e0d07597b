package content

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultMIMEType is used when no usable MIME hint is available.
const DefaultMIMEType = "application/octet-stream"

// Payload is the tagged result of classification: either Text or Binary.
type Payload interface {
	isPayload()
}

// Text is a UTF-8 decoded payload.
type Text string

// Binary is a raw byte payload, base64-encoded for transport.
type Binary []byte

func (Text) isPayload()   {}
func (Binary) isPayload() {}

// Content is a classified payload together with its effective MIME type.
// It is transient: callers encode it for transport and drop it, nothing in
// this package retains fetched bytes.
type Content struct {
	MIMEType string
	Payload  Payload
}

// IsBinary reports whether the payload carries the Binary variant.
func (c Content) IsBinary() bool {
	_, ok := c.Payload.(Binary)
	return ok
}

// Transport is the wire-facing representation returned to the host:
// raw UTF-8 text when IsBinary is false, base64 otherwise.
type Transport struct {
	MIMEType string `json:"mimeType"`
	IsBinary bool   `json:"isBinary"`
	Payload  string `json:"payload"`
}

// Transport converts the classified content into its host representation.
func (c Content) Transport() Transport {
	switch p := c.Payload.(type) {
	case Text:
		return Transport{MIMEType: c.MIMEType, IsBinary: false, Payload: string(p)}
	case Binary:
		return Transport{MIMEType: c.MIMEType, IsBinary: true, Payload: base64.StdEncoding.EncodeToString(p)}
	default:
		// Payload has exactly two implementations; an empty Content still
		// needs a usable answer.
		return Transport{MIMEType: c.MIMEType, IsBinary: true, Payload: ""}
	}
}

// Classify inspects data together with an optional MIME hint and returns a
// classified Content. It never fails: undecodable or unhinted payloads are
// handled as binary. An empty body classifies as binary regardless of the
// hint, since there is nothing to decode.
func Classify(data []byte, hint string) Content {
	mediaType := normalizeMIME(hint)

	if len(data) == 0 {
		if mediaType == "" {
			mediaType = DefaultMIMEType
		}
		return Content{MIMEType: mediaType, Payload: Binary(nil)}
	}

	if isTextMIME(mediaType) {
		if utf8.Valid(data) {
			return Content{MIMEType: mediaType, Payload: Text(data)}
		}
		zap.L().Debug("declared text content is not valid UTF-8, falling back to binary",
			zap.String("mimeType", mediaType))
		return Content{MIMEType: mediaType, Payload: Binary(data)}
	}

	if mediaType == "" {
		mediaType = DefaultMIMEType
	}
	return Content{MIMEType: mediaType, Payload: Binary(data)}
}

// normalizeMIME lowercases the hint and strips any parameters
// ("text/plain; charset=utf-8" -> "text/plain").
func normalizeMIME(hint string) string {
	mediaType := hint
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// structured text types that do not live under "text/".
var textApplicationTypes = map[string]bool{
	"application/json":       true,
	"application/xml":        true,
	"application/javascript": true,
	"application/ecmascript": true,
	"application/x-yaml":     true,
	"application/yaml":       true,
	"application/toml":       true,
	"application/x-sh":       true,
	"application/sql":        true,
	"application/graphql":    true,
	"application/x-ndjson":   true,
}

// isTextMIME reports whether mediaType names a text family: anything under
// "text/", a recognized structured-text application type, or a "+json"/"+xml"
// suffixed type.
func isTextMIME(mediaType string) bool {
	if mediaType == "" {
		return false
	}
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	if textApplicationTypes[mediaType] {
		return true
	}
	return strings.HasSuffix(mediaType, "+json") || strings.HasSuffix(mediaType, "+xml")
}
