package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/tsapigen/tsapigen/internal/httputil"
	"github.com/tsapigen/tsapigen/internal/schemautil"
)

// Document represents an OpenAPI 3.x document, trimmed to the parts client
// generation consumes.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info,omitempty" json:"info,omitempty"`
	Paths      *Paths      `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// root is the decoded source tree, kept for $ref resolution against
	// arbitrary JSON-pointer paths.
	root *yaml.Node
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Components holds reusable objects addressable via $ref.
// Resolution walks the raw source tree, so only the schemas section is
// decoded into the typed model (it feeds document statistics).
type Components struct {
	Schemas *SchemaMap `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// Paths holds the relative paths to the individual endpoints, in document
// order.
type Paths struct {
	orderedMap[PathItem]
}

// UnmarshalYAML implements yaml.Unmarshaler preserving path order.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	return p.unmarshalMapping(node)
}

// OperationEntry pairs an HTTP method with its operation, in the order the
// method appeared on the path item.
type OperationEntry struct {
	Method    string
	Operation *Operation
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     string
	Description string
	Parameters  []*Parameter

	ops []OperationEntry
}

// UnmarshalYAML implements yaml.Unmarshaler. Method keys are collected in
// document order; unknown keys (servers, extensions, $ref) are ignored.
func (p *PathItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: path item must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: path item key: %w", node.Content[i].Line, err)
		}
		valueNode := node.Content[i+1]

		switch {
		case key == "summary":
			if err := valueNode.Decode(&p.Summary); err != nil {
				return err
			}
		case key == "description":
			if err := valueNode.Decode(&p.Description); err != nil {
				return err
			}
		case key == "parameters":
			if err := valueNode.Decode(&p.Parameters); err != nil {
				return err
			}
		case httputil.IsMethod(key):
			op := new(Operation)
			if err := valueNode.Decode(op); err != nil {
				return fmt.Errorf("line %d: operation %q: %w", valueNode.Line, key, err)
			}
			p.ops = append(p.ops, OperationEntry{Method: key, Operation: op})
		}
	}
	return nil
}

// Operations returns the operations declared on this path in document order.
func (p *PathItem) Operations() []OperationEntry {
	if p == nil {
		return nil
	}
	return p.ops
}

// Operation returns the operation for a lowercase method name, or nil.
func (p *PathItem) Operation(method string) *Operation {
	for _, entry := range p.Operations() {
		if entry.Method == method {
			return entry.Operation
		}
	}
	return nil
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string       `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *Responses   `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref         string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	In          string  `yaml:"in,omitempty" json:"in,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string   `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Content     *Content `yaml:"content,omitempty" json:"content,omitempty"`
}

// Responses is a container for the expected responses of an operation, with
// status codes kept in document order.
type Responses struct {
	// Default is the response for codes not otherwise declared.
	Default *Response

	codes orderedMap[Response]
}

// UnmarshalYAML implements yaml.Unmarshaler. Status codes are validated
// during decode; extension fields ("x-...") are skipped.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: responses must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: response key: %w", node.Content[i].Line, err)
		}
		valueNode := node.Content[i+1]

		if len(key) > 2 && key[:2] == "x-" {
			continue
		}
		if !httputil.ValidateStatusCode(key) {
			return fmt.Errorf("line %d: invalid status code %q in responses: must be a valid HTTP status code (e.g., \"200\", \"404\"), wildcard pattern (e.g., \"2XX\"), or \"default\"", node.Content[i].Line, key)
		}

		resp := new(Response)
		if err := valueNode.Decode(resp); err != nil {
			return fmt.Errorf("line %d: response %q: %w", valueNode.Line, key, err)
		}
		if key == "default" {
			r.Default = resp
			continue
		}
		r.codes.set(key, resp)
	}
	return nil
}

// Codes returns the declared status codes in document order.
func (r *Responses) Codes() []string {
	if r == nil {
		return nil
	}
	return r.codes.Keys()
}

// Get returns the response for a status code, or nil.
func (r *Responses) Get(code string) *Response {
	if r == nil {
		return nil
	}
	return r.codes.Get(code)
}

// Len returns the number of status-coded responses (excluding default).
func (r *Responses) Len() int {
	if r == nil {
		return 0
	}
	return r.codes.Len()
}

// Response describes a single response from an API operation.
type Response struct {
	Ref         string   `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Content     *Content `yaml:"content,omitempty" json:"content,omitempty"`
}

// Content maps content-type keys to media type objects, in document order.
type Content struct {
	orderedMap[MediaType]
}

// UnmarshalYAML implements yaml.Unmarshaler preserving content-type order.
func (c *Content) UnmarshalYAML(node *yaml.Node) error {
	return c.unmarshalMapping(node)
}

// MediaType describes the schema of a single content-type entry.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// SchemaMap maps schema or property names to schemas, in document order.
type SchemaMap struct {
	orderedMap[Schema]
}

// UnmarshalYAML implements yaml.Unmarshaler preserving property order.
func (m *SchemaMap) UnmarshalYAML(node *yaml.Node) error {
	return m.unmarshalMapping(node)
}

// Keys returns the schema names in document order. Safe on a nil map, which
// is how an absent schemas or properties mapping decodes.
func (m *SchemaMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.orderedMap.Keys()
}

// Get returns the schema for name, or nil.
func (m *SchemaMap) Get(name string) *Schema {
	if m == nil {
		return nil
	}
	return m.orderedMap.Get(name)
}

// Len returns the number of schemas. Safe on a nil map.
func (m *SchemaMap) Len() int {
	if m == nil {
		return 0
	}
	return m.orderedMap.Len()
}

// Schema represents a JSON Schema node, trimmed to the fields client
// generation reads.
type Schema struct {
	Ref         string     `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Title       string     `yaml:"title,omitempty" json:"title,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Type        any        `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Format      string     `yaml:"format,omitempty" json:"format,omitempty"`
	Enum        []any      `yaml:"enum,omitempty" json:"enum,omitempty"`
	Items       *Schema    `yaml:"items,omitempty" json:"items,omitempty"`
	Properties  *SchemaMap `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required    []string   `yaml:"required,omitempty" json:"required,omitempty"`
	Nullable    bool       `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0
	Default     any        `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any        `yaml:"example,omitempty" json:"example,omitempty"`
}

// PrimaryType returns the schema's primary type name, handling both the
// OAS 3.0 string form and the OAS 3.1+ array form. Returns "" when no type
// is declared.
func (s *Schema) PrimaryType() string {
	if s == nil {
		return ""
	}
	return schemautil.PrimaryType(s.Type)
}

// IsRequired reports whether the named property is in the schema's required
// list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
