package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"github.com/shamank/ipfs-mcp-server/pkg/cidutil"
	"github.com/shamank/ipfs-mcp-server/pkg/config"
)

// Error kinds surfaced after the gateway list is exhausted. Match with
// errors.Is.
var (
	// ErrGatewayUnreachable means all gateways failed with mixed or
	// transport-level errors.
	ErrGatewayUnreachable = errors.New("all gateways unreachable")
	// ErrContentNotFound means every gateway answered with a not-found
	// class status for the CID.
	ErrContentNotFound = errors.New("content not found on any gateway")
	// ErrTimeout means every gateway attempt hit its deadline.
	ErrTimeout = errors.New("all gateways timed out")
)

// GatewayClient fetches raw bytes for a CID over an ordered list of HTTP
// gateway URL templates. Fetches are independent of each other; the client
// holds no mutable state and is safe for concurrent use.
type GatewayClient struct {
	gateways       []string
	attemptTimeout time.Duration
	httpClient     *http.Client
}

// NewGatewayClient builds a client over the given gateway templates. Each
// attempt is bounded by attemptTimeout so a slow gateway cannot starve the
// remaining fallbacks beyond its own budget.
func NewGatewayClient(gateways []string, attemptTimeout time.Duration) *GatewayClient {
	return &GatewayClient{
		gateways:       append([]string(nil), gateways...),
		attemptTimeout: attemptTimeout,
		httpClient:     &http.Client{},
	}
}

// Fetch tries the configured gateways strictly in order and returns the raw
// payload plus the Content-Type the winning gateway declared. The MIME value
// is a hint, not authoritative. Only after exhausting every gateway does it
// fail, with the predominant failure category.
func (g *GatewayClient) Fetch(ctx context.Context, id string) ([]byte, string, error) {
	if len(g.gateways) == 0 {
		return nil, "", fmt.Errorf("%w: no gateways configured", ErrGatewayUnreachable)
	}

	var (
		notFound int
		timeouts int
		lastErr  error
	)

	for _, gw := range g.gateways {
		url := buildGatewayURL(gw, id)
		zap.L().Debug("fetching ipfs content", zap.String("url", url))

		data, mimeType, err := g.attempt(ctx, url)
		if err == nil {
			verifyRawCID(id, data)
			return data, mimeType, nil
		}

		lastErr = err
		switch {
		case isTimeout(err):
			timeouts++
			zap.L().Warn("gateway attempt timed out", zap.String("url", url))
		case isNotFoundStatus(err):
			notFound++
			zap.L().Debug("gateway reported content not found", zap.String("url", url))
		default:
			zap.L().Warn("gateway attempt failed", zap.String("url", url), zap.Error(err))
		}
	}

	total := len(g.gateways)
	switch {
	case notFound == total:
		return nil, "", fmt.Errorf("%w: %s", ErrContentNotFound, id)
	case timeouts == total:
		return nil, "", fmt.Errorf("%w: %s", ErrTimeout, id)
	default:
		return nil, "", fmt.Errorf("%w: last error: %v", ErrGatewayUnreachable, lastErr)
	}
}

// attempt performs one bounded HTTP GET.
func (g *GatewayClient) attempt(ctx context.Context, url string) ([]byte, string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Error("failed to close gateway response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &statusError{code: resp.StatusCode, url: url}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// statusError marks a non-success gateway response.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gateway %s returned status %d", e.url, e.code)
}

// isNotFoundStatus reports whether err is a not-found-class gateway status
// (404 or 410).
func isNotFoundStatus(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		return false
	}
	return se.code == http.StatusNotFound || se.code == http.StatusGone
}

// isTimeout reports whether err represents an attempt deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// buildGatewayURL substitutes id into the template's {cid} placeholder, or
// appends it when the template has none (plain base URLs work too).
func buildGatewayURL(template, id string) string {
	if strings.Contains(template, config.CIDPlaceholder) {
		return strings.Replace(template, config.CIDPlaceholder, id, 1)
	}
	return template + id
}

// verifyRawCID re-hashes data for raw+sha2-256 CIDv1 identifiers and logs a
// mismatch. Best effort only; non-verifiable CIDs and parse failures are
// ignored.
func verifyRawCID(id string, data []byte) {
	requested, err := cid.Decode(id)
	if err != nil || !cidutil.VerifiesRaw(requested) {
		return
	}
	computed, err := cidutil.CIDv1RawSHA256CID(data)
	if err != nil {
		return
	}
	if !computed.Equals(requested) {
		zap.L().Warn("fetched content does not match requested CID",
			zap.String("requested", id),
			zap.String("computed", computed.String()))
	}
}
