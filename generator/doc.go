// Package generator emits TypeScript client code from parsed OpenAPI 3.x
// documents.
//
// Two files are produced per run: a type-declaration file (types.ts) with one
// request interface and one response declaration per operation, and a client
// implementation file (client.ts or client.js) with one fetch-based function
// per operation. Emission follows document order throughout, so generating
// the same document twice yields byte-identical output.
//
// # Basic Usage
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithAPIName("item service"),
//	    generator.WithBaseURL("https://api.example.com"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := result.WriteFiles("./gen"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Generation is strict about malformed input: an operation without a 2xx
// response aborts with a *tserrors.NoSuccessResponseError, an unresolvable
// $ref aborts with a *tserrors.ResolutionError, and a JSON body schema that
// is neither object- nor array-shaped aborts with a
// *tserrors.UnsupportedSchemaTypeError. Nothing is emitted on failure.
// Lossy-but-recoverable translations (unknown schema types mapped to any,
// duplicate property names) are reported as issues on the result instead.
package generator
