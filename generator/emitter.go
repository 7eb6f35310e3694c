package generator

import (
	"fmt"
	"strings"

	"github.com/tsapigen/tsapigen/internal/httputil"
	"github.com/tsapigen/tsapigen/parser"
	"github.com/tsapigen/tsapigen/tserrors"
)

// seenNames tracks property names already emitted into a declaration. The
// first writer wins: a later property with a name already in the set is
// dropped with an info issue.
type seenNames map[string]bool

// emitProperty appends one field declaration of the form "name[?]: Type;".
//
// Array-typed schemas emit Array<Elem> where Elem is the primitive mapping
// of the items schema's type; nested arrays and object items are not
// expanded at property level and fall back to any.
func (cg *tsGenerator) emitProperty(buf *strings.Builder, name string, schema *parser.Schema, required bool, seen seenNames, jsonPath string) {
	if seen[name] {
		cg.addIssue(jsonPath,
			fmt.Sprintf("property %q is already declared, keeping the first declaration", name),
			SeverityInfo)
		return
	}
	seen[name] = true

	var tsType string
	if t := schema.PrimaryType(); t == "array" {
		elem := "any"
		if schema.Items != nil {
			elem, _ = tsPrimitive(schema.Items.PrimaryType())
		}
		tsType = "Array<" + elem + ">"
	} else {
		var known bool
		tsType, known = tsPrimitive(t)
		if !known && t != "" {
			cg.addIssue(jsonPath,
				fmt.Sprintf("schema type %q of property %q has no TypeScript primitive, using any", t, name),
				SeverityWarning)
		}
	}

	optional := "?"
	if required {
		optional = ""
	}
	fmt.Fprintf(buf, "  %s%s: %s;\n", name, optional, tsType)
}

// contentShape describes what emitContent found in a JSON body.
type contentShape struct {
	// IsArray is true when the body schema is array-shaped
	IsArray bool
	// ElemType is the mapped primitive element type for arrays of
	// primitives; empty when the element properties were emitted as
	// interface fields or the body was absent
	ElemType string
}

// emitContent locates the JSON media type of a request or response body and
// emits its object properties into buf.
//
// The first content key matching application/json (including parameterized
// and suffixed forms) is selected; other media types are ignored. A missing
// content mapping, a missing JSON entry, and a schema carrying neither a
// type nor a $ref are all silent no-ops. A resolved body schema that is
// neither object- nor array-shaped fails with a
// *tserrors.UnsupportedSchemaTypeError.
func (cg *tsGenerator) emitContent(buf *strings.Builder, content *parser.Content, seen seenNames, jsonPath string) (contentShape, error) {
	if content == nil {
		return contentShape{}, nil
	}

	var media *parser.MediaType
	for _, key := range content.Keys() {
		if httputil.IsJSONMediaType(key) {
			media = content.Get(key)
			break
		}
	}
	if media == nil {
		if content.Len() > 0 {
			cg.addIssue(jsonPath, "no application/json media type, skipping body", SeverityInfo)
		}
		return contentShape{}, nil
	}

	schema := media.Schema
	if schema == nil || (schema.Ref == "" && schema.PrimaryType() == "") {
		return contentShape{}, nil
	}

	schema, err := cg.doc.ResolveSchemaFully(schema)
	if err != nil {
		return contentShape{}, err
	}

	switch t := schema.PrimaryType(); t {
	case "object":
		cg.emitObjectProperties(buf, schema, seen, jsonPath)
		return contentShape{}, nil

	case "array":
		return cg.emitArrayContent(buf, schema, seen, jsonPath)

	case "":
		// The $ref target lost its type on the way: schemas declaring
		// properties without an explicit type are still treated as
		// objects, anything else is skipped.
		if schema.Properties != nil {
			cg.addIssue(jsonPath, "schema declares properties without a type, treating as object", SeverityInfo)
			cg.emitObjectProperties(buf, schema, seen, jsonPath)
		}
		return contentShape{}, nil

	default:
		return contentShape{}, &tserrors.UnsupportedSchemaTypeError{
			SchemaType: t,
			Path:       jsonPath,
			Message:    "JSON bodies must be object- or array-shaped",
		}
	}
}

// emitArrayContent handles an array-shaped body: object items contribute
// interface fields, primitive items contribute an element type for a type
// alias.
func (cg *tsGenerator) emitArrayContent(buf *strings.Builder, schema *parser.Schema, seen seenNames, jsonPath string) (contentShape, error) {
	items := schema.Items
	if items != nil && items.Ref != "" {
		resolved, err := cg.doc.ResolveSchemaFully(items)
		if err != nil {
			return contentShape{}, err
		}
		items = resolved
	}

	switch it := items.PrimaryType(); it {
	case "object":
		cg.emitObjectProperties(buf, items, seen, jsonPath)
		return contentShape{IsArray: true}, nil

	case "string", "integer", "number", "boolean":
		elem, _ := tsPrimitive(it)
		return contentShape{IsArray: true, ElemType: elem}, nil

	case "":
		if items != nil && items.Properties != nil {
			cg.emitObjectProperties(buf, items, seen, jsonPath)
			return contentShape{IsArray: true}, nil
		}
		cg.addIssue(jsonPath, "array items carry no type, using any elements", SeverityWarning)
		return contentShape{IsArray: true, ElemType: "any"}, nil

	default:
		cg.addIssue(jsonPath,
			fmt.Sprintf("array items of type %q are not expanded, using any elements", it),
			SeverityWarning)
		return contentShape{IsArray: true, ElemType: "any"}, nil
	}
}

// emitObjectProperties emits every property of an object schema in document
// order.
func (cg *tsGenerator) emitObjectProperties(buf *strings.Builder, schema *parser.Schema, seen seenNames, jsonPath string) {
	if schema.Properties == nil {
		return
	}
	for _, name := range schema.Properties.Keys() {
		cg.emitProperty(buf, name, schema.Properties.Get(name), schema.IsRequired(name), seen, jsonPath)
	}
}
