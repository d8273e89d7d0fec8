package scanner

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner enumerates candidate files under the configured roots. It produces
// plain path lists; all interpretation of the paths happens in the analyzer.
type Scanner struct {
	ignoreDirs      []string
	excludePatterns []string
	log             *slog.Logger
}

// New creates a scanner. ignoreDirs are directory names pruned anywhere in
// the tree; excludePatterns are doublestar globs matched against the path
// relative to the walked root.
func New(ignoreDirs, excludePatterns []string, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		ignoreDirs:      ignoreDirs,
		excludePatterns: excludePatterns,
		log:             log,
	}
}

// SourceFiles returns every file under root with the given extension
func (s *Scanner) SourceFiles(root, extension string) []string {
	return s.walk(root, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), extension)
	})
}

// TestFiles returns every file under root with the given extension whose base
// name ends with the test file suffix
func (s *Scanner) TestFiles(root, extension, testFileSuffix string) []string {
	return s.walk(root, func(name string) bool {
		if !strings.EqualFold(filepath.Ext(name), extension) {
			return false
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		return strings.HasSuffix(base, testFileSuffix)
	})
}

// walk enumerates files under root that pass the keep filter. A missing or
// unreadable root degrades to an empty list rather than an error: a
// misconfigured root yields a clean run, not a crash.
func (s *Scanner) walk(root string, keep func(name string) bool) []string {
	if _, err := os.Stat(root); err != nil {
		s.log.Warn("root not accessible, skipping", "root", root, "err", err)
		return nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("unreadable path, skipping", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if s.isIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !keep(d.Name()) {
			return nil
		}
		if s.isExcluded(root, path) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		s.log.Warn("walk failed", "root", root, "err", err)
		return nil
	}
	return files
}

func (s *Scanner) isIgnoredDir(name string) bool {
	for _, dir := range s.ignoreDirs {
		if name == dir {
			return true
		}
	}
	return false
}

func (s *Scanner) isExcluded(root, path string) bool {
	if len(s.excludePatterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.excludePatterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
