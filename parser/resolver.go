package parser

import (
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/tsapigen/tsapigen/tserrors"
)

// MaxRefDepth is the maximum depth allowed for chained $ref resolution.
// ResolveSchema resolves a single level per call; ResolveSchemaFully applies
// this bound to protect against circular reference chains.
const MaxRefDepth = 100

// ResolveSchema resolves a schema's $ref against the document root and
// returns the target schema. Schemas without a reference are returned
// unchanged. Only a single level of reference is resolved per call; callers
// re-invoke (or use ResolveSchemaFully) for chained references.
//
// A reference that does not resolve to an existing path fails with a
// *tserrors.ResolutionError.
func (d *Document) ResolveSchema(s *Schema) (*Schema, error) {
	if s == nil || s.Ref == "" {
		return s, nil
	}

	node, err := d.resolvePointer(s.Ref)
	if err != nil {
		return nil, err
	}

	target := new(Schema)
	if err := node.Decode(target); err != nil {
		return nil, &tserrors.ResolutionError{
			Ref:     s.Ref,
			Message: "target is not a schema",
			Cause:   err,
		}
	}
	return target, nil
}

// ResolveSchemaFully re-invokes ResolveSchema until the result carries no
// reference, bounded by MaxRefDepth. Exceeding the bound reports the chain
// as circular.
func (d *Document) ResolveSchemaFully(s *Schema) (*Schema, error) {
	for depth := 0; depth < MaxRefDepth; depth++ {
		if s == nil || s.Ref == "" {
			return s, nil
		}
		resolved, err := d.ResolveSchema(s)
		if err != nil {
			return nil, err
		}
		s = resolved
	}
	return nil, &tserrors.ResolutionError{
		Ref:        s.Ref,
		IsCircular: true,
		Message:    "reference chain exceeds maximum depth",
	}
}

// ResolveRequestBody resolves a request body declared as a $ref
// ("#/components/requestBodies/X") and returns the target. Request bodies
// without a reference are returned unchanged; chains are bounded by
// MaxRefDepth.
func (d *Document) ResolveRequestBody(rb *RequestBody) (*RequestBody, error) {
	for depth := 0; depth < MaxRefDepth; depth++ {
		if rb == nil || rb.Ref == "" {
			return rb, nil
		}
		node, err := d.resolvePointer(rb.Ref)
		if err != nil {
			return nil, err
		}
		target := new(RequestBody)
		if err := node.Decode(target); err != nil {
			return nil, &tserrors.ResolutionError{
				Ref:     rb.Ref,
				Message: "target is not a request body",
				Cause:   err,
			}
		}
		rb = target
	}
	return nil, &tserrors.ResolutionError{
		Ref:        rb.Ref,
		IsCircular: true,
		Message:    "reference chain exceeds maximum depth",
	}
}

// ResolveResponse resolves a response declared as a $ref
// ("#/components/responses/X") and returns the target. Responses without a
// reference are returned unchanged; chains are bounded by MaxRefDepth.
func (d *Document) ResolveResponse(r *Response) (*Response, error) {
	for depth := 0; depth < MaxRefDepth; depth++ {
		if r == nil || r.Ref == "" {
			return r, nil
		}
		node, err := d.resolvePointer(r.Ref)
		if err != nil {
			return nil, err
		}
		target := new(Response)
		if err := node.Decode(target); err != nil {
			return nil, &tserrors.ResolutionError{
				Ref:     r.Ref,
				Message: "target is not a response",
				Cause:   err,
			}
		}
		r = target
	}
	return nil, &tserrors.ResolutionError{
		Ref:        r.Ref,
		IsCircular: true,
		Message:    "reference chain exceeds maximum depth",
	}
}

// resolvePointer walks a document-local JSON-pointer reference
// ("#/components/schemas/Pet") through the raw source tree and returns the
// target node.
func (d *Document) resolvePointer(ref string) (*yaml.Node, error) {
	if d == nil || d.root == nil {
		return nil, &tserrors.ResolutionError{Ref: ref, Message: "document has no source tree"}
	}
	if !strings.HasPrefix(ref, "#") {
		return nil, &tserrors.ResolutionError{Ref: ref, Message: "only document-local references are supported"}
	}

	current := d.root
	if current.Kind == yaml.DocumentNode && len(current.Content) > 0 {
		current = current.Content[0]
	}

	pointer := strings.TrimPrefix(ref, "#")
	if pointer == "" || pointer == "/" {
		return current, nil
	}

	for _, part := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		part = unescapeJSONPointer(part)
		next, ok := childNode(current, part)
		if !ok {
			return nil, &tserrors.ResolutionError{Ref: ref, Pointer: part, Message: "reference not found"}
		}
		current = next
	}
	return current, nil
}

// childNode steps one pointer segment into a mapping or sequence node.
func childNode(node *yaml.Node, part string) (*yaml.Node, bool) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == part {
				return node.Content[i+1], true
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(part)
		if err == nil && idx >= 0 && idx < len(node.Content) {
			return node.Content[idx], true
		}
	}
	return nil, false
}

// unescapeJSONPointer unescapes RFC 6901 pointer tokens
// ("~1" -> "/", "~0" -> "~").
func unescapeJSONPointer(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
