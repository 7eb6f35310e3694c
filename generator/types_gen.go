package generator

import (
	"fmt"
	"strings"
)

// typesFileName is the name of the generated type-declaration file.
const typesFileName = "types.ts"

// generatedHeader marks emitted files as machine-generated.
const generatedHeader = "// Code generated by tsapigen. DO NOT EDIT.\n"

// generateTypes renders the type-declaration file: per operation a request
// interface and one response declaration per success status, followed by a
// single API interface collecting the operation signatures.
func (cg *tsGenerator) generateTypes() error {
	parts := []string{generatedHeader}

	var signatures strings.Builder
	for _, plan := range cg.plans {
		parts = append(parts, fmt.Sprintf("export interface %s {\n%s}\n", plan.RequestName, plan.RequestFields))
		cg.result.GeneratedDeclarations++

		for _, shape := range plan.Responses {
			if shape.Name == "" {
				continue
			}
			if shape.Alias != "" {
				parts = append(parts, fmt.Sprintf("export type %s = %s;\n", shape.Name, shape.Alias))
			} else {
				parts = append(parts, fmt.Sprintf("export interface %s {\n%s}\n", shape.Name, shape.Fields))
			}
			cg.result.GeneratedDeclarations++
		}

		fmt.Fprintf(&signatures, "  %s(req: %s): Promise<%s>;\n", plan.Op.ID, plan.RequestName, plan.union())
	}

	parts = append(parts, fmt.Sprintf("export interface %s {\n%s}\n", cg.result.APIName, signatures.String()))

	cg.result.Files = append(cg.result.Files, GeneratedFile{
		Name:    typesFileName,
		Content: []byte(strings.Join(parts, "\n")),
	})
	return nil
}
