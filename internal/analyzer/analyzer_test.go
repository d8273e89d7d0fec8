package analyzer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig implements Config with all validations enabled by default
type testConfig struct {
	sourceRoot        string
	testRoot          string
	fileExtension     string
	testFileSuffix    string
	testProjectSuffix string
	ignoreDirs        []string
	ignoreFiles       []string
	noFileName        bool
	noDirStructure    bool
	missingTests      bool
}

func newTestConfig() *testConfig {
	return &testConfig{
		sourceRoot:        "src",
		testRoot:          "tests",
		fileExtension:     ".cs",
		testFileSuffix:    "Tests",
		testProjectSuffix: ".Tests",
	}
}

func (c *testConfig) GetSourceRoot() string                  { return c.sourceRoot }
func (c *testConfig) GetTestRoot() string                    { return c.testRoot }
func (c *testConfig) GetFileExtension() string               { return c.fileExtension }
func (c *testConfig) GetTestFileSuffix() string              { return c.testFileSuffix }
func (c *testConfig) GetTestProjectSuffix() string           { return c.testProjectSuffix }
func (c *testConfig) GetIgnoreDirectories() []string         { return c.ignoreDirs }
func (c *testConfig) GetIgnoreFiles() []string               { return c.ignoreFiles }
func (c *testConfig) ShouldValidateFileName() bool           { return !c.noFileName }
func (c *testConfig) ShouldValidateDirectoryStructure() bool { return !c.noDirStructure }
func (c *testConfig) ShouldValidateMissingTests() bool       { return c.missingTests }

func records(paths ...string) []FileRecord {
	result := make([]FileRecord, len(paths))
	for i, p := range paths {
		result[i] = NewFileRecord(filepath.FromSlash(p))
	}
	return result
}

func TestAnalyze_ConformingTestFile(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(
		records("src/Application/Mappers/UserMapper.cs"),
		records("tests/Application.Tests/Mappers/UserMapperTests.cs"),
	)

	assert.Empty(t, results)
}

func TestAnalyze_WrongDirectory(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(
		records("src/Application/Services/UserService.cs"),
		records("tests/Application.Tests/Services/WrongLocation/UserServiceTests.cs"),
	)

	require.Len(t, results, 1)
	require.Len(t, results[0].Errors, 1)

	err := results[0].Errors[0]
	assert.Equal(t, ErrorInvalidDirectoryStructure, err.Type)
	assert.Equal(t, filepath.FromSlash("src/Application/Services/UserService.cs"), err.SourceFilePath)
	assert.Equal(t, filepath.FromSlash("tests/Application.Tests/Services/WrongLocation/UserServiceTests.cs"), err.ActualTestPath)
	assert.Equal(t, filepath.FromSlash("tests/Application.Tests/Services/UserServiceTests.cs"), err.ExpectedTestPath)
}

func TestAnalyze_SourceFileNotFound(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(
		records("src/Application/Mappers/UserMapper.cs"),
		records("tests/Application.Tests/WrongNameTests.cs"),
	)

	require.Len(t, results, 1)
	require.Len(t, results[0].Errors, 1)

	err := results[0].Errors[0]
	assert.Equal(t, ErrorInvalidDirectoryStructure, err.Type)
	assert.Equal(t, "Source file not found: WrongName.cs", err.Message)
	assert.Empty(t, err.SourceFilePath)
	assert.Empty(t, err.ExpectedTestPath)
}

func TestAnalyze_IncorrectFileName(t *testing.T) {
	a := New(newTestConfig())

	// Right directory, wrong casing in the file name.
	results := a.Analyze(
		records("src/Application/Services/UpercaseXYZService.cs"),
		records("tests/Application.Tests/Services/UpercaseXyzServiceTests.cs"),
	)

	require.Len(t, results, 1)
	require.Len(t, results[0].Errors, 1)

	err := results[0].Errors[0]
	assert.Equal(t, ErrorInvalidFileName, err.Type)
	assert.Equal(t, "Test file has incorrect name. Expected: UpercaseXYZServiceTests.cs", err.Message)
	assert.Equal(t, filepath.FromSlash("tests/Application.Tests/Services/UpercaseXYZServiceTests.cs"), err.ExpectedTestPath)
}

func TestAnalyze_AmbiguityResolvedByLeafDirectory(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(
		records("src/Bus/Handler.cs", "src/Car/Handler.cs"),
		records("tests/Car.Tests/HandlerTests.cs"),
	)

	assert.Empty(t, results)
}

func TestAnalyze_AmbiguityResolvedButMisplaced(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(
		records("src/Bus/Handler.cs", "src/Car/Handler.cs"),
		records("tests/Car.Tests/Nested/HandlerTests.cs"),
	)

	// Leaf segment "Nested" matches neither candidate, so the ambiguity is
	// reported rather than guessed.
	require.Len(t, results, 1)
	require.Len(t, results[0].Errors, 1)
	assert.Equal(t, ErrorInvalidDirectoryStructure, results[0].Errors[0].Type)
}

func TestAnalyze_UnresolvedAmbiguity(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(
		records("src/Bus/Handler.cs", "src/Car/Handler.cs"),
		records("tests/Train.Tests/HandlerTests.cs"),
	)

	require.Len(t, results, 1)
	require.Len(t, results[0].Errors, 1)

	err := results[0].Errors[0]
	assert.Equal(t, ErrorInvalidDirectoryStructure, err.Type)
	assert.Contains(t, err.Message, "2 source files")
	assert.Equal(t, "./src/Bus/Handler.cs, ./src/Car/Handler.cs", err.SourceFilePath)
	assert.Equal(t, filepath.FromSlash("tests/Train.Tests/HandlerTests.cs"), err.ActualTestPath)
	assert.Empty(t, err.ExpectedTestPath)
}

func TestAnalyze_AmbiguityFirstCandidateWins(t *testing.T) {
	a := New(newTestConfig())

	// Two candidates share the leaf directory name; input order decides.
	sources := records("src/Bus/Shared/Handler.cs", "src/Car/Shared/Handler.cs")
	tests := records("tests/Bus.Tests/Shared/HandlerTests.cs")

	assert.Empty(t, a.Analyze(sources, tests))
}

func TestAnalyze_MissingTest(t *testing.T) {
	cfg := newTestConfig()
	cfg.missingTests = true
	a := New(cfg)

	results := a.Analyze(
		records("src/Application/OrderService.cs"),
		nil,
	)

	require.Len(t, results, 1)

	expected := filepath.FromSlash("tests/Application.Tests/OrderServiceTests.cs")
	assert.Equal(t, "OrderServiceTests.cs", results[0].TestFile)
	assert.Equal(t, expected, results[0].TestFilePath)

	require.Len(t, results[0].Errors, 1)
	err := results[0].Errors[0]
	assert.Equal(t, ErrorMissingTest, err.Type)
	assert.Equal(t, "Missing test file for source file: "+filepath.FromSlash("src/Application/OrderService.cs"), err.Message)
	assert.Equal(t, expected, err.ExpectedTestPath)
	assert.Empty(t, err.ActualTestPath)
}

func TestAnalyze_MissingTestSweepDisabledByDefault(t *testing.T) {
	a := New(newTestConfig())

	results := a.Analyze(records("src/Application/OrderService.cs"), nil)

	assert.Empty(t, results)
}

func TestAnalyze_MissingTestLookupIsCaseInsensitive(t *testing.T) {
	cfg := newTestConfig()
	cfg.missingTests = true
	a := New(cfg)

	results := a.Analyze(
		records("src/Application/OrderService.cs"),
		records("tests/Application.Tests/ORDERSERVICETests.cs"),
	)

	for _, result := range results {
		for _, err := range result.Errors {
			assert.NotEqual(t, ErrorMissingTest, err.Type)
		}
	}
}

func TestAnalyze_IgnoredDirectory(t *testing.T) {
	cfg := newTestConfig()
	cfg.ignoreDirs = []string{"obj"}
	a := New(cfg)

	results := a.Analyze(
		records("src/Application/UserService.cs"),
		records("tests/Application.Tests/obj/Debug/UserServiceTests.cs"),
	)

	assert.Empty(t, results)
}

func TestAnalyze_IgnoredDirectoryIsSegmentMatch(t *testing.T) {
	cfg := newTestConfig()
	cfg.ignoreDirs = []string{"obj"}
	a := New(cfg)

	// "objects" contains "obj" as a substring but not as a path segment.
	results := a.Analyze(
		records("src/Application/UserService.cs"),
		records("tests/Application.Tests/objects/UserServiceTests.cs"),
	)

	assert.Len(t, results, 1)
}

func TestAnalyze_IgnoredFile(t *testing.T) {
	cfg := newTestConfig()
	cfg.ignoreFiles = []string{"assemblyinfotests.cs"}
	a := New(cfg)

	results := a.Analyze(
		nil,
		records("tests/Application.Tests/AssemblyInfoTests.cs"),
	)

	assert.Empty(t, results)
}

func TestAnalyze_DirectoryStructureToggleOff(t *testing.T) {
	cfg := newTestConfig()
	cfg.noDirStructure = true
	a := New(cfg)

	results := a.Analyze(
		records("src/Application/Services/UserService.cs"),
		records("tests/Application.Tests/Wrong/UserServiceTests.cs", "tests/Application.Tests/OrphanTests.cs"),
	)

	assert.Empty(t, results)
}

func TestAnalyze_FileNameToggleOff(t *testing.T) {
	cfg := newTestConfig()
	cfg.noFileName = true
	a := New(cfg)

	results := a.Analyze(
		records("src/Application/UserService.cs"),
		records("tests/Application.Tests/userserviceTests.cs"),
	)

	assert.Empty(t, results)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	a := New(newTestConfig())

	assert.Empty(t, a.Analyze(nil, nil))
}

func TestAnalyze_Deterministic(t *testing.T) {
	cfg := newTestConfig()
	cfg.missingTests = true
	a := New(cfg)

	sources := records(
		"src/Bus/Handler.cs",
		"src/Car/Handler.cs",
		"src/Application/OrderService.cs",
		"src/Application/Mappers/UserMapper.cs",
	)
	tests := records(
		"tests/Train.Tests/HandlerTests.cs",
		"tests/Application.Tests/Mappers/UserMapperTests.cs",
		"tests/Application.Tests/WrongNameTests.cs",
	)

	first := a.Analyze(sources, tests)
	second := a.Analyze(sources, tests)

	assert.Equal(t, first, second)
}
