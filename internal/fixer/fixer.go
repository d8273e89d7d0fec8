package fixer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GrzesiekP/tests-filestructure-linter/internal/analyzer"
)

// Action records one move/rename decided or performed by the fixer
type Action struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Applied bool   `json:"applied"`
}

// Fixable reports whether a finding can be fixed mechanically. A move/rename
// needs the source file, the actual test path and the expected test path; a
// finding lacking any of the three is not fixable.
func Fixable(err analyzer.AnalysisError) bool {
	return err.SourceFilePath != "" && err.ActualTestPath != "" && err.ExpectedTestPath != ""
}

// Fixer moves misplaced test files to their expected paths
type Fixer struct {
	dryRun bool
	log    *slog.Logger
}

// New creates a fixer. With dryRun set, Apply only records what it would do.
func New(dryRun bool, log *slog.Logger) *Fixer {
	if log == nil {
		log = slog.Default()
	}
	return &Fixer{dryRun: dryRun, log: log}
}

// Apply walks the findings and moves each fixable test file to its expected
// path. Non-fixable findings are skipped silently; failed moves are reported
// together after all fixable findings have been attempted.
func (f *Fixer) Apply(results []analyzer.AnalysisResult) ([]Action, error) {
	var actions []Action
	var errs []error

	for _, result := range results {
		for _, finding := range result.Errors {
			if !Fixable(finding) {
				continue
			}
			if finding.ActualTestPath == finding.ExpectedTestPath {
				continue
			}

			action := Action{From: finding.ActualTestPath, To: finding.ExpectedTestPath}
			if f.dryRun {
				f.log.Info("would move", "from", action.From, "to", action.To)
				actions = append(actions, action)
				continue
			}

			if err := f.move(action.From, action.To); err != nil {
				errs = append(errs, err)
				continue
			}
			action.Applied = true
			f.log.Info("moved", "from", action.From, "to", action.To)
			actions = append(actions, action)
		}
	}

	return actions, errors.Join(errs...)
}

func (f *Fixer) move(from, to string) error {
	if _, err := os.Stat(to); err == nil {
		return fmt.Errorf("refusing to overwrite %s", to)
	}
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return fmt.Errorf("creating target directory: %w", err)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("moving %s: %w", from, err)
	}
	return nil
}
