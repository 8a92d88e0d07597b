// Package config holds the server's runtime settings.
//
// Configuration comes from three layers, later ones winning:
//
//  1. YAML file (optional, passed via the -config flag)
//  2. Environment variables (IPFS_MCP_GATEWAYS, IPFS_MCP_NODE_API,
//     IPFS_MCP_DEBUG)
//  3. Built-in defaults applied by Validate and Timeouts.WithDefaults
//
// # Gateways
//
// Gateways are URL templates tried strictly in order; the server falls back
// to the next one on error, bad status, or timeout. The {cid} token marks
// where the content identifier goes:
//
//	gateways:
//	  - "http://localhost:8080/ipfs/{cid}"
//	  - "https://ipfs.io/ipfs/{cid}"
//
// A template without the token gets the CID appended, so a plain gateway
// base URL like "https://ipfs.io/ipfs/" also works.
//
// # Node API
//
// node_api_url points at a Kubo node's HTTP API (default port 5001). It is
// optional: without it all reads go through the gateways and uploads are
// unavailable.
//
//	node_api_url: "http://localhost:5001"
//
// # Example
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
package config
