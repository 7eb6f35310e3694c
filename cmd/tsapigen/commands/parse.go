package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/tsapigen/tsapigen/generator"
	"github.com/tsapigen/tsapigen/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format     string
	NoValidate bool
	Quiet      bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "f", "text", "output format: text or yaml")
	fs.StringVar(&flags.Format, "format", "text", "output format: text or yaml")
	fs.BoolVar(&flags.NoValidate, "no-validate", false, "skip basic structure validation (openapi 3.x version field)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the operation listing")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the operation listing")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: tsapigen parse [flags] <file|->\n\n")
		Writef(output, "Parse an OpenAPI document and print a structural summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  tsapigen parse openapi.yaml\n")
		Writef(output, "  tsapigen parse --format yaml openapi.yaml\n")
		Writef(output, "  tsapigen parse --no-validate draft.yaml\n")
		Writef(output, "  cat openapi.yaml | tsapigen parse -q -\n")
	}

	return fs, flags
}

// parseSummary is the structured form of the parse report, emitted when the
// yaml output format is selected.
type parseSummary struct {
	Version    string             `yaml:"version"`
	Format     string             `yaml:"format"`
	Title      string             `yaml:"title,omitempty"`
	APIVersion string             `yaml:"apiVersion,omitempty"`
	Paths      int                `yaml:"paths"`
	Schemas    int                `yaml:"schemas"`
	Operations []summaryOperation `yaml:"operations"`
}

type summaryOperation struct {
	Method      string `yaml:"method"`
	Path        string `yaml:"path"`
	OperationID string `yaml:"operationId"`
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Format != "text" && flags.Format != "yaml" {
		fs.Usage()
		return fmt.Errorf("invalid output format %q (must be text or yaml)", flags.Format)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	p := parser.New()
	p.ValidateStructure = !flags.NoValidate

	var result *parser.ParseResult
	var err error
	if specPath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
	} else {
		result, err = p.Parse(specPath)
		if err != nil {
			return fmt.Errorf("parsing file: %w", err)
		}
	}

	if flags.Format == "yaml" {
		return writeYAMLSummary(result)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "OpenAPI Document Parser\n")
		Writef(os.Stderr, "=======================\n\n")
		Writef(os.Stderr, "Specification: %s\n", result.SourcePath)
		Writef(os.Stderr, "OAS Version: %s\n", result.Version)
		Writef(os.Stderr, "Format: %s\n", result.SourceFormat)
		if info := result.Document.Info; info != nil {
			Writef(os.Stderr, "Title: %s\n", info.Title)
			if info.Version != "" {
				Writef(os.Stderr, "API Version: %s\n", info.Version)
			}
		}
		Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
		Writef(os.Stderr, "Paths: %d\n", result.Stats.PathCount)
		Writef(os.Stderr, "Operations: %d\n", result.Stats.OperationCount)
		Writef(os.Stderr, "Schemas: %d\n", result.Stats.SchemaCount)
		Writef(os.Stderr, "Load Time: %v\n\n", result.LoadTime)
	}

	// Operation listing goes to stdout, one line per operation, with the
	// identifier the generate command would derive.
	if doc := result.Document; doc != nil && doc.Paths != nil {
		for _, path := range doc.Paths.Keys() {
			for _, entry := range doc.Paths.Get(path).Operations() {
				opID := generator.DefaultOperationID(path, entry.Method, entry.Operation)
				fmt.Printf("%-7s %-40s %s\n", entry.Method, path, opID)
			}
		}
	}

	return nil
}

// writeYAMLSummary marshals the parse result as a YAML document on stdout.
func writeYAMLSummary(result *parser.ParseResult) error {
	summary := parseSummary{
		Version: result.Version,
		Format:  string(result.SourceFormat),
		Paths:   result.Stats.PathCount,
		Schemas: result.Stats.SchemaCount,
	}
	if info := result.Document.Info; info != nil {
		summary.Title = info.Title
		summary.APIVersion = info.Version
	}
	if doc := result.Document; doc != nil && doc.Paths != nil {
		for _, path := range doc.Paths.Keys() {
			for _, entry := range doc.Paths.Get(path).Operations() {
				summary.Operations = append(summary.Operations, summaryOperation{
					Method:      entry.Method,
					Path:        path,
					OperationID: generator.DefaultOperationID(path, entry.Method, entry.Operation),
				})
			}
		}
	}

	out, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
