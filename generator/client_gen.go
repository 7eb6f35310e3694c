package generator

import (
	"fmt"
	"strings"

	"github.com/tsapigen/tsapigen/internal/httputil"
)

// clientFileName returns the client implementation file name for a language.
func clientFileName(lang Language) string {
	if lang == LanguageJavaScript {
		return "client.js"
	}
	return "client.ts"
}

// generateClient renders the client implementation file: one exported async
// fetch wrapper per operation, plus a baseURL constant and (for TypeScript)
// a type-only import of the declaration file.
func (cg *tsGenerator) generateClient() error {
	ts := cg.g.Language != LanguageJavaScript

	parts := []string{generatedHeader}
	if ts {
		if imports := cg.typeImports(); len(imports) > 0 {
			parts = append(parts, fmt.Sprintf("import type { %s } from \"./types\";\n", strings.Join(imports, ", ")))
		}
	}
	parts = append(parts, fmt.Sprintf("const baseURL = %q;\n", cg.g.BaseURL))

	for _, plan := range cg.plans {
		parts = append(parts, cg.clientFunction(plan, ts))
	}

	cg.result.Files = append(cg.result.Files, GeneratedFile{
		Name:    clientFileName(cg.g.Language),
		Content: []byte(strings.Join(parts, "\n")),
	})
	return nil
}

// typeImports returns the declaration names the client references, in
// emission order.
func (cg *tsGenerator) typeImports() []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, plan := range cg.plans {
		add(plan.RequestName)
		for _, shape := range plan.Responses {
			add(shape.Name)
		}
	}
	return names
}

// clientFunction renders one operation's fetch wrapper.
//
// Path parameters become template-literal accesses on the request argument.
// GET requests serialize the request object into the query string and send
// no body; every other method sends the request object as a JSON body. A
// non-ok response raises an Error carrying the response text.
func (cg *tsGenerator) clientFunction(plan *operationPlan, ts bool) string {
	op := plan.Op
	urlExpr := "`${baseURL}" + pathTemplate(op.Path) + "`"

	var buf strings.Builder
	if ts {
		fmt.Fprintf(&buf, "export async function %s(request: %s): Promise<%s> {\n", op.ID, plan.RequestName, plan.union())
	} else {
		fmt.Fprintf(&buf, "export async function %s(request) {\n", op.ID)
	}

	if op.Method == httputil.MethodGet {
		if ts {
			buf.WriteString("  const query = new URLSearchParams(request as unknown as Record<string, string>).toString();\n")
		} else {
			buf.WriteString("  const query = new URLSearchParams(request).toString();\n")
		}
		fmt.Fprintf(&buf, "  const response = await fetch(%s + (query ? `?${query}` : \"\"), { method: \"GET\" });\n", urlExpr)
	} else {
		fmt.Fprintf(&buf, "  const response = await fetch(%s, {\n", urlExpr)
		fmt.Fprintf(&buf, "    method: %q,\n", strings.ToUpper(op.Method))
		buf.WriteString("    headers: { \"Content-Type\": \"application/json\" },\n")
		buf.WriteString("    body: JSON.stringify(request),\n")
		buf.WriteString("  });\n")
	}

	buf.WriteString("  if (!response.ok) {\n")
	buf.WriteString("    throw new Error(await response.text());\n")
	buf.WriteString("  }\n")
	buf.WriteString("  return response.json();\n")
	buf.WriteString("}\n")
	return buf.String()
}

// pathTemplate rewrites {param} placeholders as template-literal accesses on
// the request argument: "/items/{id}" -> "/items/${request.id}".
func pathTemplate(path string) string {
	return strings.ReplaceAll(path, "{", "${request.")
}
