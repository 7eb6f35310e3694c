package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreDoc = `openapi: 3.0.0
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
      required:
        - name
      properties:
        name:
          type: string
`

func TestHandleGenerateInline(t *testing.T) {
	t.Cleanup(specCache.reset)

	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:    specInput{Content: petstoreDoc},
		APIName: "pet store",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, "PetStore", output.APIName)
	assert.Equal(t, 2, output.FileCount)
	assert.Equal(t, 1, output.GeneratedOperations)

	require.Len(t, output.Files, 2)
	assert.Equal(t, "types.ts", output.Files[0].Name)
	assert.Contains(t, output.Files[0].Content, "export interface ListPetsRequest")
	assert.Equal(t, "client.ts", output.Files[1].Name)
	assert.Contains(t, output.Files[1].Content, "export async function listPets")
}

func TestHandleGenerateToDirectory(t *testing.T) {
	t.Cleanup(specCache.reset)

	dir := filepath.Join(t.TempDir(), "gen")
	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:      specInput{Content: petstoreDoc},
		OutputDir: dir,
	})
	require.NoError(t, err)
	require.Nil(t, result)

	// File contents are not echoed inline when writing to disk.
	for _, f := range output.Files {
		assert.Empty(t, f.Content)
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Len(t, data, f.Size)
	}
}

func TestHandleGenerateJavaScript(t *testing.T) {
	t.Cleanup(specCache.reset)

	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:     specInput{Content: petstoreDoc},
		Language: "js",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "client.js", output.Files[1].Name)
	assert.NotContains(t, output.Files[1].Content, "import type")
}

func TestHandleGenerateInvalidLanguage(t *testing.T) {
	t.Cleanup(specCache.reset)

	result, _, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:     specInput{Content: petstoreDoc},
		Language: "rust",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleGenerateInvalidSpec(t *testing.T) {
	t.Cleanup(specCache.reset)

	result, _, err := handleGenerate(context.Background(), nil, generateInput{
		Spec: specInput{Content: "swagger: \"2.0\"\n"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
