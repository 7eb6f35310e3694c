package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tsapigen/tsapigen"
	"github.com/tsapigen/tsapigen/cmd/tsapigen/commands"
	"github.com/tsapigen/tsapigen/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("tsapigen v%s\n", tsapigen.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tsapigen - TypeScript client generator for OpenAPI 3.x documents

Usage:
  tsapigen <command> [flags] [arguments]

Commands:
  generate    Generate TypeScript types and a fetch-based client
  parse       Parse an OpenAPI document and print a structural summary
  mcp         Run as an MCP server over stdio
  version     Print version information
  help        Show this help message

Examples:
  tsapigen generate -o ./gen --name "pet store" --url https://api.example.com openapi.yaml
  tsapigen generate -o ./gen --lang js openapi.json
  tsapigen parse openapi.yaml
  cat openapi.yaml | tsapigen generate -o ./gen -

Run 'tsapigen <command> --help' for command-specific flags.`)
}
