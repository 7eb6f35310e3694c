// Package parser parses OpenAPI 3.x documents into an order-preserving
// object model suitable for deterministic code generation.
//
// The model is deliberately narrower than the full OpenAPI specification: it
// keeps exactly the parts client generation consumes (paths, operations,
// parameters, request bodies, responses, and schemas) and discards the rest
// during decode. Mappings whose iteration order is observable in generated
// output (paths, response codes, content types, schema properties) preserve
// the key order of the source document instead of using plain Go maps.
//
// # Usage
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, path := range result.Document.Paths.Keys() {
//	    item := result.Document.Paths.Get(path)
//	    for _, entry := range item.Operations() {
//	        fmt.Println(entry.Method, path)
//	    }
//	}
//
// Both YAML and JSON sources are supported; JSON is parsed through the YAML
// decoder since YAML is a superset of JSON.
package parser
