package generator

import (
	"strings"

	"github.com/tsapigen/tsapigen/internal/naming"
	"github.com/tsapigen/tsapigen/parser"
)

// OperationInfo is a single (path, method) operation flattened out of the
// document's paths mapping, paired with its derived identifier.
type OperationInfo struct {
	// Path is the path template (e.g., "/items/{id}")
	Path string
	// Method is the lowercase HTTP method
	Method string
	// ID is the derived operation identifier (e.g., "getItem")
	ID string
	// Operation is the decoded operation object
	Operation *parser.Operation
}

// extractOperations flattens the document's paths mapping into a sequence of
// operations. Paths appear in document order, and methods within a path in
// the order they were declared, so everything generated downstream inherits
// the source document's ordering.
func extractOperations(doc *parser.Document, idFn OperationIDFunc) []OperationInfo {
	if doc == nil || doc.Paths == nil {
		return nil
	}

	var ops []OperationInfo
	for _, path := range doc.Paths.Keys() {
		for _, entry := range doc.Paths.Get(path).Operations() {
			ops = append(ops, OperationInfo{
				Path:      path,
				Method:    entry.Method,
				ID:        idFn(path, entry.Method, entry.Operation),
				Operation: entry.Operation,
			})
		}
	}
	return ops
}

// DefaultOperationID derives an operation identifier. The document's
// operationId field wins when declared; otherwise an identifier is built
// from the method and path, with path parameters rendered as "By<Param>":
//
//	GET  /items          -> getItems
//	GET  /items/{id}     -> getItemsById
//	POST /users/{id}/pets -> postUsersByIdPets
func DefaultOperationID(path, method string, op *parser.Operation) string {
	if op != nil && op.OperationID != "" {
		return op.OperationID
	}

	p := strings.ReplaceAll(path, "{", "by ")
	p = strings.ReplaceAll(p, "}", "")
	return naming.ToCamelCase(method + " " + p)
}
