package generator

import (
	"fmt"
	"strings"

	"github.com/tsapigen/tsapigen/internal/httputil"
	"github.com/tsapigen/tsapigen/internal/issues"
	"github.com/tsapigen/tsapigen/parser"
	"github.com/tsapigen/tsapigen/tserrors"
)

// tsGenerator holds the shared state of a single generation run: the source
// document, the accumulating result, and the per-operation plans both output
// files are rendered from.
type tsGenerator struct {
	g      *Generator
	doc    *parser.Document
	result *GenerateResult
	ops    []OperationInfo
	plans  []*operationPlan
}

// operationPlan is the fully analyzed shape of one operation: the request
// interface body and one response shape per declared success status.
type operationPlan struct {
	Op            OperationInfo
	RequestName   string
	RequestFields string
	Responses     []responseShape
}

// responseShape describes one member of an operation's response union.
type responseShape struct {
	// Status is the declared status code (e.g., "200", "2XX")
	Status string
	// Name is the emitted declaration name; empty for a 204 response,
	// which contributes void to the union and no declaration
	Name string
	// Alias is the primitive element type when the declaration is a type
	// alias (array-of-primitive body) rather than an interface
	Alias string
	// IsArray is true when the body is array-shaped and the union member
	// is Array<Name>
	IsArray bool
	// Fields is the interface body when the declaration is an interface
	Fields string
}

// union renders the operation's Promise result type, preserving the order
// the success statuses were declared in.
func (p *operationPlan) union() string {
	members := make([]string, 0, len(p.Responses))
	for _, shape := range p.Responses {
		switch {
		case shape.Name == "":
			members = append(members, "void")
		case shape.IsArray:
			members = append(members, "Array<"+shape.Name+">")
		default:
			members = append(members, shape.Name)
		}
	}
	return strings.Join(members, " | ")
}

func (cg *tsGenerator) addIssue(path, message string, sev Severity) {
	cg.result.Issues = append(cg.result.Issues, GenerateIssue{
		Path:     path,
		Message:  message,
		Severity: sev,
	})
}

// planOperations analyzes every extracted operation. Any error here is
// fatal and precedes all emission.
func (cg *tsGenerator) planOperations() error {
	ids := make(map[string]bool, len(cg.ops))
	for _, op := range cg.ops {
		if ids[op.ID] {
			cg.addIssue(issues.FormatPath("paths", op.Path, op.Method),
				fmt.Sprintf("duplicate operation identifier %q: generated declarations will collide", op.ID),
				SeverityWarning)
		}
		ids[op.ID] = true

		plan, err := cg.planOperation(op)
		if err != nil {
			return err
		}
		cg.plans = append(cg.plans, plan)
	}
	return nil
}

// planOperation builds the request interface body and the response shapes
// for one operation.
//
// The request interface merges path/query parameters with the fields of the
// JSON request body. Both feed the same seen set, and parameters are emitted
// first, so a body field that collides with a parameter name is dropped.
func (cg *tsGenerator) planOperation(op OperationInfo) (*operationPlan, error) {
	opPath := issues.FormatPath("paths", op.Path, op.Method)
	plan := &operationPlan{Op: op, RequestName: requestTypeName(op.ID)}

	seen := make(seenNames)
	var fields strings.Builder
	for _, p := range op.Operation.Parameters {
		if p.Name == "" {
			cg.addIssue(issues.FormatPath(opPath, "parameters"),
				"skipping parameter without a name (parameter $refs are not resolved)",
				SeverityInfo)
			continue
		}
		cg.emitProperty(&fields, p.Name, p.Schema, p.Required, seen, issues.FormatPath(opPath, "parameters"))
	}
	if rb := op.Operation.RequestBody; rb != nil {
		rb, err := cg.doc.ResolveRequestBody(rb)
		if err != nil {
			return nil, err
		}
		if _, err := cg.emitContent(&fields, rb.Content, seen, issues.FormatPath(opPath, "requestBody")); err != nil {
			return nil, err
		}
	}
	plan.RequestFields = fields.String()

	success := successCodes(op.Operation.Responses)
	if len(success) == 0 {
		return nil, &tserrors.NoSuccessResponseError{
			OperationID: op.ID,
			Path:        op.Path,
			Method:      op.Method,
		}
	}

	for _, status := range success {
		// 204 No Content carries no body: the union gets void and no
		// declaration is emitted.
		if status == "204" {
			plan.Responses = append(plan.Responses, responseShape{Status: status})
			continue
		}

		resp, err := cg.doc.ResolveResponse(op.Operation.Responses.Get(status))
		if err != nil {
			return nil, err
		}
		var content *parser.Content
		if resp != nil {
			content = resp.Content
		}

		// Each response declaration scopes its own property names.
		var respFields strings.Builder
		shape, err := cg.emitContent(&respFields, content, make(seenNames), issues.FormatPath(opPath, "responses", status))
		if err != nil {
			return nil, err
		}

		plan.Responses = append(plan.Responses, responseShape{
			Status:  status,
			Name:    responseTypeName(op.ID, status),
			Alias:   shape.ElemType,
			IsArray: shape.IsArray,
			Fields:  respFields.String(),
		})
	}

	return plan, nil
}

// successCodes returns the operation's 2xx status codes in document order.
func successCodes(responses *parser.Responses) []string {
	var codes []string
	for _, code := range responses.Codes() {
		if httputil.IsSuccessStatus(code) {
			codes = append(codes, code)
		}
	}
	return codes
}
