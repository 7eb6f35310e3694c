package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsapigen/tsapigen/parser"
	"github.com/tsapigen/tsapigen/tserrors"
)

func mustParse(t *testing.T, src string) parser.ParseResult {
	t.Helper()
	result, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)
	return *result
}

const itemServiceYAML = `openapi: 3.0.0
info:
  title: Item Service
  version: 1.0.0
paths:
  /items/{id}:
    get:
      operationId: getItem
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: the item
          content:
            application/json:
              schema:
                type: object
                required:
                  - name
                properties:
                  name:
                    type: string
`

func TestGenerateEndToEnd(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(mustParse(t, itemServiceYAML)),
		WithAPIName("item service"),
		WithBaseURL("https://api.example.com"),
	)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.GeneratedOperations)
	assert.Equal(t, 2, result.GeneratedDeclarations)

	types := result.TypesFile()
	require.NotNil(t, types)
	assert.Equal(t, `// Code generated by tsapigen. DO NOT EDIT.

export interface GetItemRequest {
  id: string;
}

export interface GetItemResponseOk {
  name: string;
}

export interface ItemService {
  getItem(req: GetItemRequest): Promise<GetItemResponseOk>;
}
`, string(types.Content))

	client := result.ClientFile()
	require.NotNil(t, client)
	assert.Equal(t, "client.ts", client.Name)
	assert.Equal(t, `// Code generated by tsapigen. DO NOT EDIT.

import type { GetItemRequest, GetItemResponseOk } from "./types";

const baseURL = "https://api.example.com";

export async function getItem(request: GetItemRequest): Promise<GetItemResponseOk> {
  const query = new URLSearchParams(request as unknown as Record<string, string>).toString();
  const response = await fetch(`+"`${baseURL}/items/${request.id}`"+` + (query ? `+"`?${query}`"+` : ""), { method: "GET" });
  if (!response.ok) {
    throw new Error(await response.text());
  }
  return response.json();
}
`, string(client.Content))
}

func TestRequestMergesParametersAndBody(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /items/{id}:
    put:
      operationId: updateItem
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required:
                - name
              properties:
                id:
                  type: integer
                name:
                  type: string
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  ok:
                    type: boolean
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)

	types := string(result.TypesFile().Content)

	// The path parameter wins over the body field of the same name, so the
	// request interface declares id exactly once, as a string.
	assert.Contains(t, types, "export interface UpdateItemRequest {\n  id: string;\n  name: string;\n}\n")
	assert.NotContains(t, types, "id: number;")

	var dupe bool
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "already declared") {
			dupe = true
		}
	}
	assert.True(t, dupe, "expected an issue for the dropped duplicate property")
}

func TestNoContentResponseMapsToVoid(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /items/{id}:
    delete:
      operationId: deleteItem
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "204":
          description: deleted
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)

	types := string(result.TypesFile().Content)
	assert.Contains(t, types, "deleteItem(req: DeleteItemRequest): Promise<void>;")
	assert.NotContains(t, types, "DeleteItemResponse")
	assert.Equal(t, 1, result.GeneratedDeclarations)
}

func TestArrayOfObjectsResponse(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
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
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)

	types := string(result.TypesFile().Content)
	assert.Contains(t, types, "export interface ListPetsResponseOk {\n  name: string;\n}\n")
	assert.Contains(t, types, "listPets(req: ListPetsRequest): Promise<Array<ListPetsResponseOk>>;")
}

func TestArrayOfPrimitivesResponse(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /tags:
    get:
      operationId: listTags
      responses:
        "200":
          description: tags
          content:
            application/json:
              schema:
                type: array
                items:
                  type: string
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)

	types := string(result.TypesFile().Content)
	assert.Contains(t, types, "export type ListTagsResponseOk = string;")
	assert.Contains(t, types, "listTags(req: ListTagsRequest): Promise<Array<ListTagsResponseOk>>;")
}

func TestResponseUnionPreservesDocumentOrder(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /jobs/{id}:
    get:
      operationId: getJob
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "202":
          description: still running
          content:
            application/json:
              schema:
                type: object
                properties:
                  status:
                    type: string
        "200":
          description: done
          content:
            application/json:
              schema:
                type: object
                properties:
                  output:
                    type: string
        "404":
          description: unknown job
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)

	types := string(result.TypesFile().Content)
	assert.Contains(t, types, "getJob(req: GetJobRequest): Promise<GetJobResponseAccepted | GetJobResponseOk>;")
	// Non-2xx responses contribute nothing.
	assert.NotContains(t, types, "NotFound")
}

func TestNoSuccessResponse(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /broken:
    get:
      operationId: broken
      responses:
        "404":
          description: not found
`
	_, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrNoSuccessResponse)

	var nsErr *tserrors.NoSuccessResponseError
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, "broken", nsErr.OperationID)
	assert.Equal(t, "get", nsErr.Method)
}

func TestUnsupportedSchemaType(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /name:
    get:
      operationId: getName
      responses:
        "200":
          description: a bare string body
          content:
            application/json:
              schema:
                type: string
`
	_, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrUnsupportedSchemaType)

	var schemaErr *tserrors.UnsupportedSchemaTypeError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "string", schemaErr.SchemaType)
}

func TestUnresolvableRefAborts(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
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
                $ref: '#/components/schemas/Missing'
`
	_, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrResolution)
}

func TestComponentRequestBodyAndResponseRefs(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /pets:
    post:
      operationId: createPet
      requestBody:
        $ref: '#/components/requestBodies/NewPet'
      responses:
        "201":
          $ref: '#/components/responses/PetCreated'
components:
  requestBodies:
    NewPet:
      required: true
      content:
        application/json:
          schema:
            type: object
            required:
              - name
            properties:
              name:
                type: string
  responses:
    PetCreated:
      description: created
      content:
        application/json:
          schema:
            type: object
            required:
              - id
            properties:
              id:
                type: string
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)

	types := result.TypesFile()
	require.NotNil(t, types)
	assert.Contains(t, string(types.Content), "export interface CreatePetRequest {\n  name: string;\n}\n")
	assert.Contains(t, string(types.Content), "export interface CreatePetResponseCreated {\n  id: string;\n}\n")
}

func TestUnresolvableResponseRefAborts(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          $ref: '#/components/responses/Missing'
`
	_, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrResolution)
}

func TestJavaScriptClient(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(mustParse(t, itemServiceYAML)),
		WithLanguage(LanguageJavaScript),
	)
	require.NoError(t, err)

	client := result.GetFile("client.js")
	require.NotNil(t, client)

	content := string(client.Content)
	assert.NotContains(t, content, "import type")
	assert.NotContains(t, content, ": Promise<")
	assert.Contains(t, content, "export async function getItem(request) {")
	assert.Contains(t, content, "const query = new URLSearchParams(request).toString();")

	// The declaration file is emitted either way.
	require.NotNil(t, result.TypesFile())
}

func TestGenerateDeterministic(t *testing.T) {
	generate := func() *GenerateResult {
		result, err := GenerateWithOptions(
			WithParsed(mustParse(t, itemServiceYAML)),
			WithAPIName("item service"),
			WithBaseURL("https://api.example.com"),
		)
		require.NoError(t, err)
		return result
	}

	first := generate()
	second := generate()
	require.Len(t, second.Files, len(first.Files))
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Name, second.Files[i].Name)
		assert.Equal(t, string(first.Files[i].Content), string(second.Files[i].Content))
	}
}

func TestStrictModeFailsOnWarnings(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /a:
    get:
      operationId: getA
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  meta:
                    type: object
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)), WithStrictMode(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
	require.NotNil(t, result)
	assert.Equal(t, 1, result.WarningCount)

	// Without strict mode the same document generates with a warning.
	result, err = GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.WarningCount)
	assert.Contains(t, string(result.TypesFile().Content), "meta?: any;")
}

func TestIncludeInfoFiltering(t *testing.T) {
	doc := `openapi: 3.0.0
info:
  title: T
  version: "1"
paths:
  /upload:
    post:
      operationId: upload
      requestBody:
        content:
          text/plain:
            schema:
              type: string
      responses:
        "204":
          description: accepted
`
	result, err := GenerateWithOptions(WithParsed(mustParse(t, doc)))
	require.NoError(t, err)
	assert.Positive(t, result.InfoCount)

	result, err = GenerateWithOptions(WithParsed(mustParse(t, doc)), WithIncludeInfo(false))
	require.NoError(t, err)
	assert.Zero(t, result.InfoCount)
	assert.Empty(t, result.Issues)
}

func TestCustomOperationID(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(mustParse(t, itemServiceYAML)),
		WithOperationID(func(path, method string, op *parser.Operation) string {
			return method + "Custom"
		}),
	)
	require.NoError(t, err)

	types := string(result.TypesFile().Content)
	assert.Contains(t, types, "export interface GetCustomRequest {")
	assert.Contains(t, types, "getCustom(req: GetCustomRequest): Promise<GetCustomResponseOk>;")
}

func TestDefaultOperationID(t *testing.T) {
	tests := []struct {
		path   string
		method string
		op     *parser.Operation
		want   string
	}{
		{"/items", "get", nil, "getItems"},
		{"/items/{id}", "get", nil, "getItemsById"},
		{"/users/{id}/pets", "post", nil, "postUsersByIdPets"},
		{"/items", "get", &parser.Operation{OperationID: "custom"}, "custom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultOperationID(tt.path, tt.method, tt.op), "%s %s", tt.method, tt.path)
	}
}

func TestGenerateWithOptionsValidation(t *testing.T) {
	_, err := GenerateWithOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input source")

	_, err = GenerateWithOptions(
		WithFilePath("x.yaml"),
		WithParsed(parser.ParseResult{}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = GenerateWithOptions(WithFilePath("x.yaml"), WithAPIName(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrConfig)

	_, err = GenerateWithOptions(WithFilePath("x.yaml"), WithLanguage("rust"))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrConfig)

	_, err = GenerateWithOptions(WithFilePath("x.yaml"), WithOperationID(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrConfig)
}

func TestGenerateMissingFile(t *testing.T) {
	_, err := GenerateWithOptions(WithFilePath("does/not/exist.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrParse)
}

func TestWriteFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(mustParse(t, itemServiceYAML)))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "gen")
	require.NoError(t, result.WriteFiles(dir))

	for _, file := range result.Files {
		data, err := os.ReadFile(filepath.Join(dir, file.Name))
		require.NoError(t, err)
		assert.Equal(t, file.Content, data)
	}
}

func TestWriteFilesRejectsPathSeparators(t *testing.T) {
	result := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.ts", Content: []byte("x")}}}
	err := result.WriteFiles(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path separators")
}
