package generator

import (
	"fmt"
	"time"

	"github.com/tsapigen/tsapigen/internal/issues"
	"github.com/tsapigen/tsapigen/internal/severity"
	"github.com/tsapigen/tsapigen/parser"
	"github.com/tsapigen/tsapigen/tserrors"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy translations (e.g., a schema type with
	// no TypeScript primitive mapped to any)
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates features that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// Language selects the syntax of the emitted client implementation file.
type Language string

const (
	// LanguageTypeScript emits client.ts with type annotations and a
	// type-only import of the declaration file.
	LanguageTypeScript Language = "ts"
	// LanguageJavaScript emits client.js with annotations and imports
	// stripped.
	LanguageJavaScript Language = "js"
)

// OperationIDFunc derives the identifier for an operation. It receives the
// path template, the lowercase HTTP method, and the decoded operation, and
// must return a unique, syntactically valid TypeScript identifier.
type OperationIDFunc func(path, method string, op *parser.Operation) string

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "types.ts", "client.ts")
	Name string
	// Content is the generated source code
	Content []byte
}

// GenerateResult contains the results of generating client code from an
// OpenAPI specification
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourceVersion is the source document's declared OpenAPI version
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// APIName is the exported name of the generated API interface
	APIName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats parser.DocumentStats
	// GeneratedDeclarations is the count of emitted type declarations
	GeneratedDeclarations int
	// GeneratedOperations is the count of operations generated
	GeneratedOperations int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// TypesFile returns the generated type-declaration file, or nil.
func (r *GenerateResult) TypesFile() *GeneratedFile {
	return r.GetFile(typesFileName)
}

// ClientFile returns the generated client implementation file, or nil.
func (r *GenerateResult) ClientFile() *GeneratedFile {
	if f := r.GetFile(clientFileName(LanguageTypeScript)); f != nil {
		return f
	}
	return r.GetFile(clientFileName(LanguageJavaScript))
}

// Generator handles client code generation from OpenAPI specifications
type Generator struct {
	// APIName names the generated API interface (after PascalCase
	// conversion). If empty, defaults to "api".
	APIName string

	// BaseURL is the server URL baked into the generated client
	BaseURL string

	// Language selects the client implementation syntax
	// Default: LanguageTypeScript
	Language Language

	// OperationID derives operation identifiers
	// If nil, DefaultOperationID is used
	OperationID OperationIDFunc

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		APIName:     "api",
		Language:    LanguageTypeScript,
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	// Configuration options
	apiName     string
	baseURL     string
	language    Language
	operationID OperationIDFunc
	strictMode  bool
	includeInfo bool
}

// GenerateWithOptions generates client code from an OpenAPI specification
// using functional options. This provides a flexible, extensible API that
// combines input source selection and configuration in a single function
// call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithAPIName("petstore"),
//	    generator.WithLanguage(generator.LanguageTypeScript),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		APIName:     cfg.apiName,
		BaseURL:     cfg.baseURL,
		Language:    cfg.language,
		OperationID: cfg.operationID,
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
	}

	// Route to appropriate generation method based on input source
	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return g.GenerateParsed(*cfg.parsed)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("generator: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		apiName:     "api",
		language:    LanguageTypeScript,
		strictMode:  false,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	if cfg.filePath != nil {
		sourceCount++
	}
	if cfg.parsed != nil {
		sourceCount++
	}

	if sourceCount == 0 {
		return nil, fmt.Errorf("must specify an input source (use WithFilePath or WithParsed)")
	}
	if sourceCount > 1 {
		return nil, fmt.Errorf("must specify exactly one input source")
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithAPIName specifies the name of the generated API interface
// Default: "api"
func WithAPIName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return &tserrors.ConfigError{Option: "APIName", Message: "name cannot be empty"}
		}
		cfg.apiName = name
		return nil
	}
}

// WithBaseURL specifies the server URL baked into the generated client
// Default: "" (requests are made against relative paths)
func WithBaseURL(url string) Option {
	return func(cfg *generateConfig) error {
		cfg.baseURL = url
		return nil
	}
}

// WithLanguage selects the client implementation syntax
// Default: LanguageTypeScript
func WithLanguage(lang Language) Option {
	return func(cfg *generateConfig) error {
		if lang != LanguageTypeScript && lang != LanguageJavaScript {
			return &tserrors.ConfigError{
				Option:  "Language",
				Value:   string(lang),
				Message: fmt.Sprintf("must be %q or %q", LanguageTypeScript, LanguageJavaScript),
			}
		}
		cfg.language = lang
		return nil
	}
}

// WithOperationID overrides how operation identifiers are derived
// Default: DefaultOperationID
func WithOperationID(fn OperationIDFunc) Option {
	return func(cfg *generateConfig) error {
		if fn == nil {
			return &tserrors.ConfigError{Option: "OperationID", Message: "function cannot be nil"}
		}
		cfg.operationID = fn
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any issues)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages in the result
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// Generate generates client code from an OpenAPI specification file
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	parseResult, err := parser.New().Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse specification: %w", err)
	}
	return g.GenerateParsed(*parseResult)
}

// GenerateParsed generates client code from an already-parsed OpenAPI
// specification
func (g *Generator) GenerateParsed(parseResult parser.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()

	apiName := g.APIName
	if apiName == "" {
		apiName = "api"
	}

	// Initialize result
	result := &GenerateResult{
		Files:         make([]GeneratedFile, 0, 2),
		SourceVersion: parseResult.Version,
		SourceFormat:  parseResult.SourceFormat,
		APIName:       interfaceName(apiName),
		Issues:        make([]GenerateIssue, 0),
		LoadTime:      parseResult.LoadTime,
		SourceSize:    parseResult.SourceSize,
		Stats:         parseResult.Stats,
	}

	idFn := g.OperationID
	if idFn == nil {
		idFn = DefaultOperationID
	}

	cg := &tsGenerator{
		g:      g,
		doc:    parseResult.Document,
		result: result,
		ops:    extractOperations(parseResult.Document, idFn),
	}
	result.GeneratedOperations = len(cg.ops)

	// Planning walks every operation before anything is emitted, so a
	// malformed operation aborts without partial output.
	if err := cg.planOperations(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	if err := cg.generateTypes(); err != nil {
		return nil, fmt.Errorf("generator: failed to generate type declarations: %w", err)
	}
	if err := cg.generateClient(); err != nil {
		return nil, fmt.Errorf("generator: failed to generate client: %w", err)
	}

	// Update counts and timing
	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if g.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
