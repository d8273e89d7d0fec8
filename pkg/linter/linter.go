// Package linter wires configuration, enumeration and analysis into the
// public entry point consumed by the CLI and by editor integrations.
package linter

import (
	"log/slog"
	"path/filepath"

	"github.com/GrzesiekP/tests-filestructure-linter/internal/analyzer"
	"github.com/GrzesiekP/tests-filestructure-linter/internal/config"
	"github.com/GrzesiekP/tests-filestructure-linter/internal/fixer"
	"github.com/GrzesiekP/tests-filestructure-linter/internal/scanner"
)

// Options configures a lint run. Empty fields fall back to the project's
// .testlint.yml configuration (or its defaults).
type Options struct {
	ProjectPath       string
	SourceRoot        string
	TestRoot          string
	FileExtension     string
	TestFileSuffix    string
	TestProjectSuffix string

	// MissingTests overrides the missing-test sweep toggle when non-nil.
	MissingTests *bool

	Logger *slog.Logger
}

// RunResult is the outcome of one analysis run
type RunResult struct {
	Results      []analyzer.AnalysisResult
	Summary      analyzer.Summary
	CheckedFiles int
}

// HasFindings reports whether the run produced any result
func (r *RunResult) HasFindings() bool {
	return len(r.Results) > 0
}

// Run enumerates source and test files for the project and analyzes them
func Run(opts Options) (*RunResult, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	projectPath, err := filepath.Abs(opts.ProjectPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(projectPath)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, opts, projectPath)

	s := scanner.New(cfg.IgnoreDirectories, cfg.ExcludePatterns, log)
	sourcePaths := s.SourceFiles(cfg.GetSourceRoot(), cfg.GetFileExtension())
	testPaths := s.TestFiles(cfg.GetTestRoot(), cfg.GetFileExtension(), cfg.GetTestFileSuffix())

	log.Debug("enumerated files", "sources", len(sourcePaths), "tests", len(testPaths))

	results := analyzer.New(cfg).Analyze(
		analyzer.NewFileRecords(sourcePaths),
		analyzer.NewFileRecords(testPaths),
	)

	return &RunResult{
		Results:      results,
		Summary:      analyzer.Summarize(results),
		CheckedFiles: len(testPaths),
	}, nil
}

// Fix runs the analysis and moves every fixable misplaced test file to its
// expected path. With dryRun set, no file is touched.
func Fix(opts Options, dryRun bool) (*RunResult, []fixer.Action, error) {
	result, err := Run(opts)
	if err != nil {
		return nil, nil, err
	}

	actions, err := fixer.New(dryRun, opts.Logger).Apply(result.Results)
	if err != nil {
		return result, actions, err
	}
	return result, actions, nil
}

func applyOverrides(cfg *config.Config, opts Options, projectPath string) {
	if opts.SourceRoot != "" {
		cfg.SourceRoot = absAgainst(projectPath, opts.SourceRoot)
	}
	if opts.TestRoot != "" {
		cfg.TestRoot = absAgainst(projectPath, opts.TestRoot)
	}
	if opts.FileExtension != "" {
		cfg.FileExtension = opts.FileExtension
		if cfg.FileExtension[0] != '.' {
			cfg.FileExtension = "." + cfg.FileExtension
		}
	}
	if opts.TestFileSuffix != "" {
		cfg.TestFileSuffix = opts.TestFileSuffix
	}
	if opts.TestProjectSuffix != "" {
		cfg.TestProjectSuffix = opts.TestProjectSuffix
	}
	if opts.MissingTests != nil {
		cfg.Validations.MissingTests = *opts.MissingTests
	}
}

func absAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
