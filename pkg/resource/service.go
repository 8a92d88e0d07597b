package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shamank/ipfs-mcp-server/pkg/cidutil"
	"github.com/shamank/ipfs-mcp-server/pkg/content"
	"github.com/shamank/ipfs-mcp-server/pkg/registry"
	"github.com/shamank/ipfs-mcp-server/pkg/storage"
)

// ErrInvalidIdentifier is the validation failure for register and fetch
// inputs. It aliases the cidutil sentinel so callers can match either.
var ErrInvalidIdentifier = cidutil.ErrInvalid

// ChangeNotifier receives a synchronous, fire-and-forget signal that the
// resource list changed. Implementations must not block for long; the
// service ignores any failure on their side.
type ChangeNotifier interface {
	ResourceListChanged()
}

// Descriptor is one list entry as presented to the host.
type Descriptor struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
}

// Service wires the registry, the storage backends, and the classifier into
// the operations exposed to the protocol host. Construct with New; the zero
// value is not usable.
type Service struct {
	registry *registry.Registry
	fetcher  storage.Fetcher
	uploader storage.Uploader
	notifier ChangeNotifier
}

// Option customizes a Service.
type Option func(*Service)

// WithNotifier injects the change notifier called after each successful
// registration.
func WithNotifier(n ChangeNotifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithUploader enables the publish operation, storing new content through
// the given backend.
func WithUploader(u storage.Uploader) Option {
	return func(s *Service) { s.uploader = u }
}

// New builds a resource service over the given registry and fetch backend.
func New(reg *registry.Registry, fetcher storage.Fetcher, opts ...Option) *Service {
	s := &Service{
		registry: reg,
		fetcher:  fetcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns descriptors for all registered resources in registration
// order, with the URI computed from the stored identifier. Entries without a
// declared MIME type are presented as octet-stream.
func (s *Service) List() []Descriptor {
	entries := s.registry.List()
	out := make([]Descriptor, 0, len(entries))
	for _, e := range entries {
		mimeType := e.MIMEType
		if mimeType == "" {
			mimeType = content.DefaultMIMEType
		}
		out = append(out, Descriptor{
			URI:         FormatURI(e.CID),
			Name:        e.Name,
			Description: e.Description,
			MIMEType:    mimeType,
		})
	}
	return out
}

// Read resolves an ipfs:// URI, fetches the content behind it, and returns
// the classified result. Registration is not a precondition; the registry is
// consulted only for a declared MIME type, which overrides the gateway's
// Content-Type as the classification hint when present.
func (s *Service) Read(ctx context.Context, uri string) (content.Content, error) {
	rawID, err := ParseURI(uri)
	if err != nil {
		return content.Content{}, err
	}
	id, err := cidutil.Validate(rawID)
	if err != nil {
		return content.Content{}, err
	}

	var declaredMIME string
	if entry, err := s.registry.Lookup(id); err == nil {
		declaredMIME = entry.MIMEType
	}

	return s.fetchClassified(ctx, id, declaredMIME)
}

// Register validates the identifier and records a new resource entry. A
// duplicate identifier fails with registry.ErrDuplicateIdentifier and leaves
// the catalog unchanged. On success the change notifier is invoked; its
// outcome is ignored.
func (s *Service) Register(id, name, description, mimeType string) (registry.Entry, error) {
	validID, err := cidutil.Validate(id)
	if err != nil {
		return registry.Entry{}, err
	}

	entry := registry.Entry{
		CID:          validID,
		Name:         name,
		Description:  description,
		MIMEType:     mimeType,
		RegisteredAt: time.Now(),
	}
	if err := s.registry.Add(entry); err != nil {
		return registry.Entry{}, err
	}

	zap.L().Info("registered IPFS resource",
		zap.String("cid", validID),
		zap.String("name", name))
	s.notifyChanged()
	return entry, nil
}

// Fetch validates the identifier and retrieves its content directly,
// bypassing the registry entirely. This is the escape hatch for one-off
// retrieval without registration.
func (s *Service) Fetch(ctx context.Context, id string) (content.Content, error) {
	validID, err := cidutil.Validate(id)
	if err != nil {
		return content.Content{}, err
	}
	return s.fetchClassified(ctx, validID, "")
}

// Publish stores data on IPFS through the upload backend and registers the
// resulting CID as a resource. Publishing bytes that are already registered
// returns the existing entry unchanged rather than failing, since the CID is
// derived from content. Fails with storage.ErrNoNode when no upload backend
// is configured.
func (s *Service) Publish(ctx context.Context, data []byte, name, description, mimeType string) (registry.Entry, error) {
	if s.uploader == nil {
		return registry.Entry{}, fmt.Errorf("%w: publish unavailable", storage.ErrNoNode)
	}

	id, err := s.uploader.Upload(ctx, data)
	if err != nil {
		return registry.Entry{}, err
	}

	entry, err := s.Register(id, name, description, mimeType)
	if errors.Is(err, registry.ErrDuplicateIdentifier) {
		existing, lookupErr := s.registry.Lookup(id)
		if lookupErr != nil {
			return registry.Entry{}, err
		}
		zap.L().Debug("published content already registered", zap.String("cid", id))
		return existing, nil
	}
	return entry, err
}

// CanPublish reports whether an upload backend is configured.
func (s *Service) CanPublish() bool {
	return s.uploader != nil
}

func (s *Service) fetchClassified(ctx context.Context, id, declaredMIME string) (content.Content, error) {
	data, gatewayMIME, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return content.Content{}, err
	}

	hint := declaredMIME
	if hint == "" {
		hint = gatewayMIME
	}
	return content.Classify(data, hint), nil
}

func (s *Service) notifyChanged() {
	if s.notifier == nil {
		return
	}
	s.notifier.ResourceListChanged()
}
