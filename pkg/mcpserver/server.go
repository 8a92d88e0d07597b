package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/shamank/ipfs-mcp-server/pkg/registry"
	"github.com/shamank/ipfs-mcp-server/pkg/resource"
	"github.com/shamank/ipfs-mcp-server/pkg/storage"
)

// ServerName and ServerVersion identify this implementation during the MCP
// handshake.
const (
	ServerName    = "ipfs-mcp-server"
	ServerVersion = "0.1.0"
)

// Server couples an MCP server with the resource service backing it.
type Server struct {
	mcp *server.MCPServer
	svc *resource.Service
}

// New builds the MCP server, constructs the resource service over the given
// registry and storage client, and registers all resource and tool handlers.
func New(reg *registry.Registry, store *storage.Client) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithResourceCapabilities(false, true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	s := &Server{mcp: mcpServer}

	opts := []resource.Option{resource.WithNotifier(s)}
	if store.CanUpload() {
		opts = append(opts, resource.WithUploader(store))
	}
	s.svc = resource.New(reg, store, opts...)

	s.registerResourceHandlers()
	s.registerTools()
	return s
}

// Service exposes the underlying resource service, mainly for tests.
func (s *Server) Service() *resource.Service {
	return s.svc
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ResourceListChanged implements resource.ChangeNotifier by broadcasting the
// standard list-changed notification. Failures are invisible by design: a
// client that missed it only sees a stale list.
func (s *Server) ResourceListChanged() {
	s.mcp.SendNotificationToAllClients("notifications/resources/list_changed", nil)
}

func (s *Server) registerResourceHandlers() {
	template := mcp.NewResourceTemplate(
		"ipfs://{cid}",
		"IPFS Content",
		mcp.WithTemplateDescription("Content addressed by an IPFS CID, fetched through HTTP gateways"),
		mcp.WithTemplateMIMEType("application/octet-stream"),
	)
	s.mcp.AddResourceTemplate(template, server.ResourceTemplateHandlerFunc(s.handleReadResource))
}

// handleReadResource serves resources/read for any ipfs:// URI.
func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	c, err := s.svc.Read(ctx, req.Params.URI)
	if err != nil {
		zap.L().Warn("resource read failed", zap.String("uri", req.Params.URI), zap.Error(err))
		return nil, err
	}

	tr := c.Transport()
	if tr.IsBinary {
		return []mcp.ResourceContents{
			mcp.BlobResourceContents{
				URI:      req.Params.URI,
				MIMEType: tr.MIMEType,
				Blob:     tr.Payload,
			},
		}, nil
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: tr.MIMEType,
			Text:     tr.Payload,
		},
	}, nil
}

// announceResource makes a registered entry discoverable via resources/list.
func (s *Server) announceResource(entry registry.Entry) {
	uri := resource.FormatURI(entry.CID)
	mimeType := entry.MIMEType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	res := mcp.NewResource(
		uri,
		entry.Name,
		mcp.WithResourceDescription(entry.Description),
		mcp.WithMIMEType(mimeType),
	)
	s.mcp.AddResource(res, server.ResourceHandlerFunc(s.handleReadResource))
}
