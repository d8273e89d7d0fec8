package analyzer

import (
	"path/filepath"
	"strings"
)

// ExpectedTestPath computes the single canonical test file path for a source
// file. It is a pure path transformation and performs no filesystem access.
//
// The convention: the first path segment under the source root is the project
// directory; the expected test project is that name plus the test project
// suffix; subdirectories inside the project are mirrored as-is; the expected
// file name is the source base name plus the test file suffix plus the
// original extension.
//
// For example, with roots src/tests and suffixes "Tests"/".Tests":
//
//	src/Application/Mappers/UserMapper.cs
//	-> tests/Application.Tests/Mappers/UserMapperTests.cs
func ExpectedTestPath(sourceFilePath string, cfg Config) string {
	rel, err := filepath.Rel(cfg.GetSourceRoot(), sourceFilePath)
	if err != nil {
		rel = sourceFilePath
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")

	fileName := segments[len(segments)-1]
	ext := filepath.Ext(fileName)
	testFileName := strings.TrimSuffix(fileName, ext) + cfg.GetTestFileSuffix() + ext

	// Source file directly under the source root: no project directory to
	// mirror, the test file is expected directly under the test root.
	if len(segments) == 1 {
		return filepath.Join(cfg.GetTestRoot(), testFileName)
	}

	testProjectName := segments[0] + cfg.GetTestProjectSuffix()
	remaining := segments[1 : len(segments)-1]

	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, cfg.GetTestRoot(), testProjectName)
	parts = append(parts, remaining...)
	parts = append(parts, testFileName)
	return filepath.Join(parts...)
}
