// Package mcpserver wires the resource service into an MCP (Model Context
// Protocol) server over the mark3labs/mcp-go library.
//
// The protocol surface mirrors the core's four operations:
//
//   - resources/list: registered CIDs, each under its ipfs:// URI
//   - resources/read: any ipfs://<cid> URI, registered or not, served
//     through a resource template
//   - add_ipfs_resource tool: register a CID with display metadata
//   - fetch_ipfs_content tool: one-off retrieval without registration
//
// When the underlying storage client has an upload backend, a
// publish_ipfs_content tool is additionally exposed: it stores text content
// on IPFS through the node and registers the resulting CID.
//
// Registration changes are pushed to connected clients via the standard
// notifications/resources/list_changed notification; delivery is fire and
// forget.
package mcpserver
