// Package tsapigen generates TypeScript API clients from OpenAPI 3.x documents.
//
// tsapigen reads an OpenAPI document and emits two source-text artifacts: a
// type-declaration document describing each operation's request shape and
// possible response shapes, and a client-implementation document with one
// async fetch-based function per operation. The implementation document can
// be emitted in TypeScript or JavaScript binding style; the runtime behavior
// is identical in both.
//
// The library consists of two primary packages:
//
//   - parser: Parse OpenAPI 3.x documents into an order-preserving model
//   - generator: Generate TypeScript declarations and client code
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/tsapigen/tsapigen
//
// # Quick Start
//
// Generate a client from an OpenAPI document:
//
//	import "github.com/tsapigen/tsapigen/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("openapi.yaml"),
//		generator.WithAPIName("petstore"),
//		generator.WithBaseURL("https://petstore.example.com/v1"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./src/api"); err != nil {
//		log.Fatal(err)
//	}
//
// Parse a document without generating:
//
//	import "github.com/tsapigen/tsapigen/parser"
//
//	p := parser.New()
//	result, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Operations: %d\n", result.Stats.OperationCount)
//
// # Error Handling
//
// Generation failures are reported through the structured error types in the
// tserrors package, which support errors.Is and errors.As:
//
//	if errors.Is(err, tserrors.ErrNoSuccessResponse) {
//		// document describes an operation without a 2xx response
//	}
package tsapigen
