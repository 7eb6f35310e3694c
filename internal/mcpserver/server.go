// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes tsapigen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tsapigen/tsapigen"
)

const serverInstructions = `tsapigen MCP server — parses OpenAPI 3.x documents and generates TypeScript clients from them.

Configuration: All defaults are configurable via TSAPIGEN_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- TSAPIGEN_CACHE_ENABLED (default: true) — disable document caching entirely
- TSAPIGEN_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- TSAPIGEN_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline documents
- TSAPIGEN_MAX_INLINE_SIZE (default: 4194304) — maximum inline content bytes
- TSAPIGEN_GENERATE_LANGUAGE (default: ts) — default client language (ts or js)
- TSAPIGEN_GENERATE_STRICT (default: false) — fail generation on warnings by default

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by hash.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "tsapigen", Version: tsapigen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3.x document. Returns a structural summary: title, version, path/operation/schema counts, and the operations (method, path, derived identifier) in document order.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a TypeScript client from an OpenAPI 3.x document. Produces a type-declaration file (types.ts) and a fetch-based client (client.ts or client.js). Set output_dir to write files to disk, or omit it to get file contents inline. Language and strict-mode defaults are configurable via TSAPIGEN_GENERATE_LANGUAGE and TSAPIGEN_GENERATE_STRICT env vars.",
	}, handleGenerate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
