package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/shamank/ipfs-mcp-server/pkg/resource"
)

// registerTools wires the action surface: registration, arbitrary fetch,
// and (node-backed setups only) publishing.
func (s *Server) registerTools() {
	addTool := mcp.Tool{
		Name:        "add_ipfs_resource",
		Description: "Add a new IPFS CID to track as a resource",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cid": map[string]interface{}{
					"type":        "string",
					"description": "The IPFS CID to add",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Human-readable name for this resource",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Description of the content",
				},
				"mime_type": map[string]interface{}{
					"type":        "string",
					"description": "MIME type of the content",
				},
			},
			Required: []string{"cid", "name"},
		},
	}
	s.mcp.AddTool(addTool, s.handleAddResource)

	fetchTool := mcp.Tool{
		Name:        "fetch_ipfs_content",
		Description: "Fetch content from any IPFS CID (not just tracked resources)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cid": map[string]interface{}{
					"type":        "string",
					"description": "The IPFS CID to fetch",
				},
			},
			Required: []string{"cid"},
		},
	}
	s.mcp.AddTool(fetchTool, s.handleFetchContent)

	if !s.svc.CanPublish() {
		return
	}
	publishTool := mcp.Tool{
		Name:        "publish_ipfs_content",
		Description: "Store text content on IPFS via the configured node and register it as a resource",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "The text content to store",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Human-readable name for the new resource",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Description of the content",
				},
				"mime_type": map[string]interface{}{
					"type":        "string",
					"description": "MIME type of the content",
				},
			},
			Required: []string{"content", "name"},
		},
	}
	s.mcp.AddTool(publishTool, s.handlePublishContent)
}

// addResult is the JSON body returned by add_ipfs_resource and
// publish_ipfs_content.
type addResult struct {
	URI         string `json:"uri"`
	CID         string `json:"cid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType,omitempty"`
}

func (s *Server) handleAddResource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["cid"].(string)
	name, _ := args["name"].(string)
	description, _ := args["description"].(string)
	mimeType, _ := args["mime_type"].(string)

	if name == "" {
		return toolError(fmt.Errorf("name is required")), nil
	}
	if description == "" {
		description = "Content from IPFS CID: " + id
	}

	entry, err := s.svc.Register(id, name, description, mimeType)
	if err != nil {
		return toolError(err), nil
	}
	s.announceResource(entry)

	return toolJSON(addResult{
		URI:         resource.FormatURI(entry.CID),
		CID:         entry.CID,
		Name:        entry.Name,
		Description: entry.Description,
		MIMEType:    entry.MIMEType,
	})
}

func (s *Server) handleFetchContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["cid"].(string)

	c, err := s.svc.Fetch(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return toolJSON(c.Transport())
}

func (s *Server) handlePublishContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	body, _ := args["content"].(string)
	name, _ := args["name"].(string)
	description, _ := args["description"].(string)
	mimeType, _ := args["mime_type"].(string)

	if body == "" {
		return toolError(fmt.Errorf("content is required")), nil
	}
	if name == "" {
		return toolError(fmt.Errorf("name is required")), nil
	}
	if mimeType == "" {
		mimeType = "text/plain"
	}

	entry, err := s.svc.Publish(ctx, []byte(body), name, description, mimeType)
	if err != nil {
		return toolError(err), nil
	}
	s.announceResource(entry)

	return toolJSON(addResult{
		URI:         resource.FormatURI(entry.CID),
		CID:         entry.CID,
		Name:        entry.Name,
		Description: entry.Description,
		MIMEType:    entry.MIMEType,
	})
}

// toolError packs err into a tool-level error result. Request handling
// itself never fails: a bad CID or an unreachable gateway is reported to the
// model, not to the transport.
func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: err.Error()},
		},
	}
}

func toolJSON(v interface{}) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("failed to marshal tool result", zap.Error(err))
		return toolError(err), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: string(body)},
		},
	}, nil
}
