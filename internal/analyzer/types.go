package analyzer

import (
	"path/filepath"
	"strings"
)

// Config interface defines what the analyzer needs from configuration
type Config interface {
	GetSourceRoot() string
	GetTestRoot() string
	GetFileExtension() string
	GetTestFileSuffix() string
	GetTestProjectSuffix() string
	GetIgnoreDirectories() []string
	GetIgnoreFiles() []string
	ShouldValidateFileName() bool
	ShouldValidateDirectoryStructure() bool
	ShouldValidateMissingTests() bool
}

// ErrorType identifies the kind of mismatch a finding reports
type ErrorType string

const (
	// ErrorInvalidFileName means the test file sits in the right directory
	// but its name does not match the name derived from the source file.
	ErrorInvalidFileName ErrorType = "InvalidFileName"

	// ErrorInvalidDirectoryStructure means the test file is not where the
	// convention places it, or its source file cannot be uniquely resolved.
	ErrorInvalidDirectoryStructure ErrorType = "InvalidDirectoryStructure"

	// ErrorMissingTest means a source file has no test file anywhere under
	// the test root.
	ErrorMissingTest ErrorType = "MissingTest"
)

// FileRecord is one enumerated file with fields derived from its path.
// Records are created once by enumeration and read-only afterwards.
type FileRecord struct {
	Path      string // Absolute path
	BaseName  string // File name without extension
	Extension string // Extension including the dot (e.g. ".cs")
}

// NewFileRecord derives a FileRecord from an absolute path
func NewFileRecord(path string) FileRecord {
	path = filepath.Clean(path)
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return FileRecord{
		Path:      path,
		BaseName:  strings.TrimSuffix(name, ext),
		Extension: ext,
	}
}

// NewFileRecords derives FileRecords from a list of absolute paths,
// preserving order
func NewFileRecords(paths []string) []FileRecord {
	records := make([]FileRecord, len(paths))
	for i, p := range paths {
		records[i] = NewFileRecord(p)
	}
	return records
}

// AnalysisError is a single finding. All mismatches are data, never errors:
// the analyzer is total over its inputs.
//
// Path fields are populated per finding kind: a directory-structure finding
// with a uniquely resolved source file carries all three; an unresolved
// ambiguity carries SourceFilePath (comma-joined candidates) and
// ActualTestPath only; a missing-test finding has no ActualTestPath.
type AnalysisError struct {
	Type             ErrorType `json:"type"`
	Message          string    `json:"message"`
	SourceFilePath   string    `json:"sourceFilePath,omitempty"`
	ActualTestPath   string    `json:"actualTestPath,omitempty"`
	ExpectedTestPath string    `json:"expectedTestPath,omitempty"`
}

// AnalysisResult groups the findings for one test file, or for the expected
// test file of a source file that has none. A result with no errors is never
// materialized; absence of a result means "no issue".
type AnalysisResult struct {
	TestFile     string          `json:"testFile"`
	TestFilePath string          `json:"testFilePath"`
	Errors       []AnalysisError `json:"errors"`
}
