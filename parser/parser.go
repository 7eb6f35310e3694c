package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/tsapigen/tsapigen/tserrors"
)

// Parser handles OpenAPI document parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure
	// validation (an "openapi: 3.x" version field must be present).
	ValidateStructure bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// DocumentStats contains statistical information about a parsed document.
type DocumentStats struct {
	// PathCount is the number of path templates in the document
	PathCount int
	// OperationCount is the total number of (path, method) operations
	OperationCount int
	// SchemaCount is the number of reusable component schemas
	SchemaCount int
}

// ParseResult contains the parsed OpenAPI document and metadata.
//
// Callers should treat ParseResult as read-only after parsing; the document
// may be shared between type and client generation.
type ParseResult struct {
	// SourcePath is the input source path the document was read from
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the document's declared OpenAPI version string
	Version string
	// Document is the decoded document model
	Document *Document
	// Stats contains statistical information about the document
	Stats DocumentStats
	// LoadTime is the time taken to read and decode the source
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses an OpenAPI document from a file path
func (p *Parser) Parse(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &tserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return p.parse(data, path)
}

// ParseReader parses an OpenAPI document from a reader (e.g., stdin)
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &tserrors.ParseError{Path: "<reader>", Message: "failed to read input", Cause: err}
	}
	return p.parse(data, "<reader>")
}

// ParseBytes parses an OpenAPI document from a byte slice
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, "<bytes>")
}

func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	start := time.Now()

	format := DetectFormat(data)
	p.log().Debug("parsing document", "source", sourcePath, "format", string(format), "bytes", len(data))

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &tserrors.ParseError{Path: sourcePath, Message: "invalid document", Cause: err}
	}
	if root.Kind == 0 {
		return nil, &tserrors.ParseError{Path: sourcePath, Message: "empty document"}
	}

	doc := new(Document)
	if err := root.Decode(doc); err != nil {
		return nil, &tserrors.ParseError{Path: sourcePath, Message: "failed to decode document", Cause: err}
	}
	doc.root = &root

	if p.ValidateStructure {
		if err := validateStructure(doc, sourcePath); err != nil {
			return nil, err
		}
	}

	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     doc,
		Stats:        collectStats(doc),
		LoadTime:     time.Since(start),
		SourceSize:   int64(len(data)),
	}

	p.log().Debug("parsed document",
		"version", result.Version,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount)

	return result, nil
}

// validateStructure performs basic structural checks on a decoded document.
func validateStructure(doc *Document, sourcePath string) error {
	if doc.OpenAPI == "" {
		return &tserrors.ParseError{
			Path:    sourcePath,
			Message: "missing openapi version field (OAS 2.0/Swagger documents are not supported)",
		}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return &tserrors.ParseError{
			Path:    sourcePath,
			Message: fmt.Sprintf("unsupported openapi version %q: only 3.x documents are supported", doc.OpenAPI),
		}
	}
	return nil
}

// collectStats gathers document statistics for the parse result.
func collectStats(doc *Document) DocumentStats {
	var stats DocumentStats
	if doc.Paths != nil {
		stats.PathCount = doc.Paths.Len()
		for _, path := range doc.Paths.Keys() {
			stats.OperationCount += len(doc.Paths.Get(path).Operations())
		}
	}
	if doc.Components != nil {
		stats.SchemaCount = doc.Components.Schemas.Len()
	}
	return stats
}

// DetectFormat detects whether the source bytes are JSON or YAML.
// JSON documents begin with '{' or '[' after leading whitespace; everything
// else is treated as YAML (which JSON is a subset of).
func DetectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
