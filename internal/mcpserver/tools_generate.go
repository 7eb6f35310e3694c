package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tsapigen/tsapigen/generator"
)

type generateInput struct {
	Spec      specInput `json:"spec"                 jsonschema:"The OpenAPI document to generate a client from"`
	APIName   string    `json:"api_name,omitempty"   jsonschema:"Name of the generated API interface (default: api)"`
	BaseURL   string    `json:"base_url,omitempty"   jsonschema:"Server URL baked into the generated client"`
	Language  string    `json:"language,omitempty"   jsonschema:"Client language: ts or js (default: ts)"`
	Strict    bool      `json:"strict,omitempty"     jsonschema:"Fail on warnings"`
	OutputDir string    `json:"output_dir,omitempty" jsonschema:"Directory to write generated files to; omit to return file contents inline"`
}

type generatedFileInfo struct {
	Name    string `json:"name"`
	Size    int    `json:"size"`
	Content string `json:"content,omitempty"`
}

type generateOutput struct {
	Success               bool                `json:"success"`
	APIName               string              `json:"api_name"`
	OutputDir             string              `json:"output_dir,omitempty"`
	FileCount             int                 `json:"file_count"`
	Files                 []generatedFileInfo `json:"files"`
	GeneratedDeclarations int                 `json:"generated_declarations"`
	GeneratedOperations   int                 `json:"generated_operations"`
	WarningCount          int                 `json:"warning_count"`
	InfoCount             int                 `json:"info_count"`
	Issues                []string            `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	lang := cfg.GenerateLanguage
	if input.Language != "" {
		lang = generator.Language(input.Language)
	}

	opts := []generator.Option{
		generator.WithParsed(*parseResult),
		generator.WithLanguage(lang),
		generator.WithStrictMode(input.Strict || cfg.GenerateStrict),
	}
	if input.APIName != "" {
		opts = append(opts, generator.WithAPIName(input.APIName))
	}
	if input.BaseURL != "" {
		opts = append(opts, generator.WithBaseURL(input.BaseURL))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	inline := input.OutputDir == ""
	if !inline {
		if err := result.WriteFiles(input.OutputDir); err != nil {
			return errResult(err), generateOutput{}, nil
		}
	}

	output := generateOutput{
		Success:               result.Success,
		APIName:               result.APIName,
		OutputDir:             input.OutputDir,
		FileCount:             len(result.Files),
		GeneratedDeclarations: result.GeneratedDeclarations,
		GeneratedOperations:   result.GeneratedOperations,
		WarningCount:          result.WarningCount,
		InfoCount:             result.InfoCount,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		info := generatedFileInfo{Name: f.Name, Size: len(f.Content)}
		if inline {
			info.Content = string(f.Content)
		}
		output.Files = append(output.Files, info)
	}

	output.Issues = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	return nil, output, nil
}
