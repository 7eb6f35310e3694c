package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tsapigen/tsapigen"
	"github.com/tsapigen/tsapigen/generator"
	"github.com/tsapigen/tsapigen/parser"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output     string
	APIName    string
	BaseURL    string
	Language   string
	Strict     bool
	NoWarnings bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (required)")
	fs.StringVar(&flags.APIName, "n", "api", "name of the generated API interface")
	fs.StringVar(&flags.APIName, "name", "api", "name of the generated API interface")
	fs.StringVar(&flags.BaseURL, "url", "", "server URL baked into the generated client")
	fs.StringVar(&flags.Language, "lang", "ts", "client language: ts or js")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress info messages in the report")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: tsapigen generate [flags] <file|->\n\n")
		Writef(output, "Generate a TypeScript client from an OpenAPI 3.x document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  tsapigen generate -o ./gen openapi.yaml\n")
		Writef(output, "  tsapigen generate -o ./gen --name \"pet store\" --url https://api.example.com openapi.yaml\n")
		Writef(output, "  tsapigen generate -o ./gen --lang js openapi.json\n")
		Writef(output, "  cat openapi.yaml | tsapigen generate -o ./gen -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  Use '-' as the file path to read the document from stdin.\n")
		Writef(output, "\nOutput:\n")
		Writef(output, "  types.ts             type declarations (request/response interfaces)\n")
		Writef(output, "  client.ts|client.js  fetch-based client, one function per operation\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	startTime := time.Now()

	genOpts := []generator.Option{
		generator.WithAPIName(flags.APIName),
		generator.WithBaseURL(flags.BaseURL),
		generator.WithLanguage(generator.Language(flags.Language)),
		generator.WithStrictMode(flags.Strict),
		generator.WithIncludeInfo(!flags.NoWarnings),
	}

	if specPath == StdinFilePath {
		parseResult, err := parser.New().ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
		genOpts = append(genOpts, generator.WithParsed(*parseResult))
	} else {
		genOpts = append(genOpts, generator.WithFilePath(specPath))
	}

	result, err := generator.GenerateWithOptions(genOpts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating client: %w", err)
	}

	// Print results
	fmt.Printf("TypeScript Client Generator\n")
	fmt.Printf("===========================\n\n")
	fmt.Printf("tsapigen version: %s\n", tsapigen.Version())
	if specPath == StdinFilePath {
		fmt.Printf("Specification: <stdin>\n")
	} else {
		fmt.Printf("Specification: %s\n", specPath)
	}
	fmt.Printf("OAS Version: %s\n", result.SourceVersion)
	fmt.Printf("Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	fmt.Printf("API Interface: %s\n", result.APIName)
	fmt.Printf("Declarations: %d\n", result.GeneratedDeclarations)
	fmt.Printf("Operations: %d\n", result.GeneratedOperations)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Write files
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	// Print generated files
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s/%s (%d bytes)\n", flags.Output, file.Name, len(file.Content))
	}
	fmt.Println()

	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
		return nil
	}

	fmt.Printf("✗ Generation completed with %d critical issue(s)\n", result.CriticalCount)
	return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
}
