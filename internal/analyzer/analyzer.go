package analyzer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Analyzer checks that test files mirror the source tree naming convention
type Analyzer struct {
	cfg Config
}

// New creates an analyzer for the given configuration
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze runs every enabled validation over a snapshot of source and test
// file lists and returns one result per test file with findings, plus one
// result per source file lacking a test when that check is enabled.
//
// The run is a pure function of its inputs: no filesystem access, no shared
// state, identical output for identical input.
func (a *Analyzer) Analyze(sourceFiles, testFiles []FileRecord) []AnalysisResult {
	var results []AnalysisResult

	for _, testFile := range testFiles {
		if result, ok := a.checkTestFile(testFile, sourceFiles); ok {
			results = append(results, result)
		}
	}

	if a.cfg.ShouldValidateMissingTests() {
		results = append(results, a.findMissingTests(sourceFiles, testFiles)...)
	}

	// The ignore filter is authoritative: it applies to every result
	// regardless of which check produced it.
	return a.filterIgnored(results)
}

// checkTestFile matches one test file against the source list and classifies
// any mismatch. The second return is false when the file is conforming.
func (a *Analyzer) checkTestFile(testFile FileRecord, sourceFiles []FileRecord) (AnalysisResult, bool) {
	sourceName := strings.TrimSuffix(testFile.BaseName, a.cfg.GetTestFileSuffix())
	matches := FindMatchingSourceFiles(sourceFiles, sourceName, a.cfg.GetFileExtension())

	switch len(matches) {
	case 0:
		if !a.cfg.ShouldValidateDirectoryStructure() {
			return AnalysisResult{}, false
		}
		return a.newResult(testFile, AnalysisError{
			Type:           ErrorInvalidDirectoryStructure,
			Message:        fmt.Sprintf("Source file not found: %s%s", sourceName, testFile.Extension),
			ActualTestPath: testFile.Path,
		}), true

	case 1:
		return a.compareWithSource(testFile, matches[0])

	default:
		if source, ok := a.resolveAmbiguous(testFile, matches); ok {
			return a.compareWithSource(testFile, source)
		}
		if !a.cfg.ShouldValidateDirectoryStructure() {
			return AnalysisResult{}, false
		}
		return a.newResult(testFile, AnalysisError{
			Type:           ErrorInvalidDirectoryStructure,
			Message:        fmt.Sprintf("Found %d source files matching '%s%s', cannot determine which one is tested", len(matches), sourceName, testFile.Extension),
			SourceFilePath: a.joinCandidatePaths(matches),
			ActualTestPath: testFile.Path,
		}), true
	}
}

// compareWithSource compares the test file's full path against the expected
// path computed from its resolved source file. Directory mismatch dominates
// file name mismatch; a case-only name difference is still a name mismatch,
// so the comparison is an exact string comparison of cleaned paths, never a
// filesystem existence check.
func (a *Analyzer) compareWithSource(testFile, sourceFile FileRecord) (AnalysisResult, bool) {
	expected := ExpectedTestPath(sourceFile.Path, a.cfg)
	actual := testFile.Path

	if actual == expected {
		return AnalysisResult{}, false
	}

	if filepath.Dir(actual) != filepath.Dir(expected) {
		if !a.cfg.ShouldValidateDirectoryStructure() {
			return AnalysisResult{}, false
		}
		return a.newResult(testFile, AnalysisError{
			Type:             ErrorInvalidDirectoryStructure,
			Message:          fmt.Sprintf("Test file is in the wrong directory. Expected: %s", filepath.Dir(expected)),
			SourceFilePath:   sourceFile.Path,
			ActualTestPath:   actual,
			ExpectedTestPath: expected,
		}), true
	}

	if !a.cfg.ShouldValidateFileName() {
		return AnalysisResult{}, false
	}
	return a.newResult(testFile, AnalysisError{
		Type:             ErrorInvalidFileName,
		Message:          fmt.Sprintf("Test file has incorrect name. Expected: %s", filepath.Base(expected)),
		SourceFilePath:   sourceFile.Path,
		ActualTestPath:   actual,
		ExpectedTestPath: expected,
	}), true
}

// resolveAmbiguous disambiguates multiple source candidates by the innermost
// containing directory name: the test file's last directory segment below the
// test root (with the test project suffix stripped, so a project-level test
// directory like "Car.Tests" compares against the "Car" project directory) is
// matched case-insensitively against each candidate's last directory segment
// below the source root. The first candidate in input order wins.
//
// This is a leaf-name heuristic, not a path-similarity algorithm; leaf
// directories sharing a name across projects can mis-resolve.
func (a *Analyzer) resolveAmbiguous(testFile FileRecord, candidates []FileRecord) (FileRecord, bool) {
	testLeaf := lastDirSegment(testFile.Path, a.cfg.GetTestRoot())
	testLeaf = strings.TrimSuffix(testLeaf, a.cfg.GetTestProjectSuffix())
	if testLeaf == "" {
		return FileRecord{}, false
	}

	for _, candidate := range candidates {
		sourceLeaf := lastDirSegment(candidate.Path, a.cfg.GetSourceRoot())
		if strings.EqualFold(sourceLeaf, testLeaf) {
			return candidate, true
		}
	}
	return FileRecord{}, false
}

// findMissingTests reports source files whose base name has no test file
// counterpart anywhere under the test root. Each result is keyed by the
// expected test path, since no actual test file exists.
func (a *Analyzer) findMissingTests(sourceFiles, testFiles []FileRecord) []AnalysisResult {
	tested := make(map[string]struct{}, len(testFiles))
	for _, testFile := range testFiles {
		name := strings.TrimSuffix(testFile.BaseName, a.cfg.GetTestFileSuffix())
		tested[strings.ToLower(name)] = struct{}{}
	}

	var results []AnalysisResult
	for _, sourceFile := range sourceFiles {
		if _, ok := tested[strings.ToLower(sourceFile.BaseName)]; ok {
			continue
		}
		expected := ExpectedTestPath(sourceFile.Path, a.cfg)
		results = append(results, AnalysisResult{
			TestFile:     filepath.Base(expected),
			TestFilePath: expected,
			Errors: []AnalysisError{{
				Type:             ErrorMissingTest,
				Message:          fmt.Sprintf("Missing test file for source file: %s", sourceFile.Path),
				SourceFilePath:   sourceFile.Path,
				ExpectedTestPath: expected,
			}},
		})
	}
	return results
}

// filterIgnored drops results whose test path contains an ignored directory
// as a path segment, or whose file name is ignored (case-insensitive)
func (a *Analyzer) filterIgnored(results []AnalysisResult) []AnalysisResult {
	ignoreDirs := a.cfg.GetIgnoreDirectories()
	ignoreFiles := a.cfg.GetIgnoreFiles()
	if len(ignoreDirs) == 0 && len(ignoreFiles) == 0 {
		return results
	}

	filtered := make([]AnalysisResult, 0, len(results))
	for _, result := range results {
		if hasIgnoredSegment(result.TestFilePath, ignoreDirs) {
			continue
		}
		if containsFold(ignoreFiles, result.TestFile) {
			continue
		}
		filtered = append(filtered, result)
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

func (a *Analyzer) newResult(testFile FileRecord, errs ...AnalysisError) AnalysisResult {
	return AnalysisResult{
		TestFile:     testFile.BaseName + testFile.Extension,
		TestFilePath: testFile.Path,
		Errors:       errs,
	}
}

// joinCandidatePaths renders unresolved candidates as a comma-joined list of
// paths relative to the parent of the source root (e.g. "./src/Bus/Handler.cs")
func (a *Analyzer) joinCandidatePaths(candidates []FileRecord) string {
	srcRoot := a.cfg.GetSourceRoot()
	rootName := filepath.Base(srcRoot)

	paths := make([]string, len(candidates))
	for i, candidate := range candidates {
		rel, err := filepath.Rel(srcRoot, candidate.Path)
		if err != nil {
			paths[i] = candidate.Path
			continue
		}
		paths[i] = "./" + rootName + "/" + filepath.ToSlash(rel)
	}
	return strings.Join(paths, ", ")
}

// lastDirSegment returns the innermost directory name of path below root, or
// "" when the file sits directly under root or outside it
func lastDirSegment(path, root string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.Base(rel)
}

// hasIgnoredSegment checks the directory chain of path for an exact segment
// match, not a substring match
func hasIgnoredSegment(path string, ignoreDirs []string) bool {
	if len(ignoreDirs) == 0 {
		return false
	}
	segments := strings.Split(filepath.ToSlash(filepath.Dir(path)), "/")
	for _, segment := range segments {
		for _, dir := range ignoreDirs {
			if segment == dir {
				return true
			}
		}
	}
	return false
}

func containsFold(items []string, value string) bool {
	for _, item := range items {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
