//go:build integration

// Package integration provides integration tests for tsapigen.
// These tests exercise the full pipeline from parsing an OpenAPI document
// through client generation to files on disk.
//
// Run with: go test -tags=integration ./integration/... -v
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsapigen/tsapigen/cmd/tsapigen/commands"
	"github.com/tsapigen/tsapigen/generator"
	"github.com/tsapigen/tsapigen/parser"
)

const bookstoreSpec = "testdata/bookstore.yaml"

func TestFullPipeline(t *testing.T) {
	parseResult, err := parser.ParseWithOptions(
		parser.WithFilePath(bookstoreSpec),
		parser.WithValidateStructure(true),
	)
	require.NoError(t, err, "failed to parse %s", bookstoreSpec)

	assert.Equal(t, "3.0.3", parseResult.Version)
	assert.Equal(t, parser.SourceFormatYAML, parseResult.SourceFormat)
	assert.Equal(t, 2, parseResult.Stats.PathCount)
	assert.Equal(t, 4, parseResult.Stats.OperationCount)
	assert.Equal(t, 1, parseResult.Stats.SchemaCount)

	result, err := generator.GenerateWithOptions(
		generator.WithParsed(*parseResult),
		generator.WithAPIName("bookstore"),
		generator.WithBaseURL("https://books.example.com"),
	)
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, 4, result.GeneratedOperations)
	// Request interfaces for every operation plus a response declaration
	// for each non-204 success response.
	assert.Equal(t, 7, result.GeneratedDeclarations)
	require.Len(t, result.Files, 2)

	outDir := filepath.Join(t.TempDir(), "gen")
	require.NoError(t, result.WriteFiles(outDir))

	types, err := os.ReadFile(filepath.Join(outDir, "types.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(types), "export interface ListBooksRequest {")
	assert.Contains(t, string(types), "export interface Bookstore {")
	assert.Contains(t, string(types), "removeBook(req: RemoveBookRequest): Promise<void>;")
	assert.Contains(t, string(types), "listBooks(req: ListBooksRequest): Promise<Array<ListBooksResponseOk>>;")

	client, err := os.ReadFile(filepath.Join(outDir, "client.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(client), `const baseURL = "https://books.example.com";`)
	assert.Contains(t, string(client), "export async function getBook(request: GetBookRequest): Promise<GetBookResponseOk> {")
	assert.Contains(t, string(client), "`${baseURL}/books/${request.bookId}`")
}

func TestFullPipelineDeterministic(t *testing.T) {
	parseResult, err := parser.ParseWithOptions(parser.WithFilePath(bookstoreSpec))
	require.NoError(t, err)

	generate := func() *generator.GenerateResult {
		result, err := generator.GenerateWithOptions(
			generator.WithParsed(*parseResult),
			generator.WithAPIName("bookstore"),
		)
		require.NoError(t, err)
		return result
	}

	first := generate()
	second := generate()
	require.Len(t, second.Files, len(first.Files))
	for i, file := range first.Files {
		assert.Equal(t, file.Name, second.Files[i].Name)
		assert.Equal(t, string(file.Content), string(second.Files[i].Content))
	}
}

func TestFullPipelineJavaScript(t *testing.T) {
	parseResult, err := parser.ParseWithOptions(parser.WithFilePath(bookstoreSpec))
	require.NoError(t, err)

	result, err := generator.GenerateWithOptions(
		generator.WithParsed(*parseResult),
		generator.WithLanguage(generator.LanguageJavaScript),
	)
	require.NoError(t, err)

	client := result.ClientFile()
	require.NotNil(t, client)
	assert.Equal(t, "client.js", client.Name)
	assert.Contains(t, string(client.Content), "export async function listBooks(request) {")
	assert.NotContains(t, string(client.Content), "import type")
	assert.NotContains(t, string(client.Content), ": Promise<")
}

func TestCLIGenerateCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "gen")

	err := commands.HandleGenerate([]string{"-o", outDir, "-n", "bookstore", bookstoreSpec})
	require.NoError(t, err)

	for _, name := range []string{"types.ts", "client.ts"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected %s to be written", name)
		assert.Positive(t, info.Size())
	}
}
