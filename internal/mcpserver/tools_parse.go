package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tsapigen/tsapigen/generator"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to parse"`
}

type parseOperation struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operation_id"`
}

type parseOutput struct {
	Version        string           `json:"version"`
	Format         string           `json:"format"`
	Title          string           `json:"title,omitempty"`
	Description    string           `json:"description,omitempty"`
	APIVersion     string           `json:"api_version,omitempty"`
	PathCount      int              `json:"path_count"`
	OperationCount int              `json:"operation_count"`
	SchemaCount    int              `json:"schema_count"`
	Operations     []parseOperation `json:"operations,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Version:        result.Version,
		Format:         string(result.SourceFormat),
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
	}
	if info := result.Document.Info; info != nil {
		output.Title = info.Title
		output.Description = info.Description
		output.APIVersion = info.Version
	}

	// Operation identifiers are derived exactly as the generate tool
	// derives them, so the listing predicts generated function names.
	if doc := result.Document; doc != nil && doc.Paths != nil {
		output.Operations = makeSlice[parseOperation](output.OperationCount)
		for _, path := range doc.Paths.Keys() {
			for _, entry := range doc.Paths.Get(path).Operations() {
				output.Operations = append(output.Operations, parseOperation{
					Method:      entry.Method,
					Path:        path,
					OperationID: generator.DefaultOperationID(path, entry.Method, entry.Operation),
				})
			}
		}
	}

	return nil, output, nil
}
