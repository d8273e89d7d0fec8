package analyzer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedTestPath_MirrorsProjectAndSubdirectories(t *testing.T) {
	cfg := newTestConfig()

	got := ExpectedTestPath(filepath.FromSlash("src/Application/Mappers/UserMapper.cs"), cfg)

	assert.Equal(t, filepath.FromSlash("tests/Application.Tests/Mappers/UserMapperTests.cs"), got)
}

func TestExpectedTestPath_NoSubdirectories(t *testing.T) {
	cfg := newTestConfig()

	got := ExpectedTestPath(filepath.FromSlash("src/Application/OrderService.cs"), cfg)

	assert.Equal(t, filepath.FromSlash("tests/Application.Tests/OrderServiceTests.cs"), got)
}

func TestExpectedTestPath_DeepNesting(t *testing.T) {
	cfg := newTestConfig()

	got := ExpectedTestPath(filepath.FromSlash("src/Core/A/B/C/Widget.cs"), cfg)

	assert.Equal(t, filepath.FromSlash("tests/Core.Tests/A/B/C/WidgetTests.cs"), got)
}

func TestExpectedTestPath_FileDirectlyUnderSourceRoot(t *testing.T) {
	cfg := newTestConfig()

	got := ExpectedTestPath(filepath.FromSlash("src/Program.cs"), cfg)

	assert.Equal(t, filepath.FromSlash("tests/ProgramTests.cs"), got)
}

func TestExpectedTestPath_AbsoluteRoots(t *testing.T) {
	cfg := newTestConfig()
	cfg.sourceRoot = filepath.FromSlash("/repo/src")
	cfg.testRoot = filepath.FromSlash("/repo/tests")

	got := ExpectedTestPath(filepath.FromSlash("/repo/src/Application/UserService.cs"), cfg)

	assert.Equal(t, filepath.FromSlash("/repo/tests/Application.Tests/UserServiceTests.cs"), got)
}

func TestExpectedTestPath_CustomSuffixes(t *testing.T) {
	cfg := newTestConfig()
	cfg.testFileSuffix = "Spec"
	cfg.testProjectSuffix = ".Specs"

	got := ExpectedTestPath(filepath.FromSlash("src/Application/UserService.cs"), cfg)

	assert.Equal(t, filepath.FromSlash("tests/Application.Specs/UserServiceSpec.cs"), got)
}

func TestExpectedTestPath_SuffixRoundTrip(t *testing.T) {
	cfg := newTestConfig()

	expected := ExpectedTestPath(filepath.FromSlash("src/Application/UserService.cs"), cfg)
	record := NewFileRecord(expected)

	base := strings.TrimSuffix(record.BaseName, cfg.GetTestFileSuffix())
	assert.Equal(t, "UserService", base)
	assert.Equal(t, record.BaseName, base+cfg.GetTestFileSuffix())
}
