package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file
const ConfigFileName = ".testlint.yml"

// Config describes one lint run. It is loaded from .testlint.yml at the
// project root, with defaults applied for anything not specified.
type Config struct {
	SourceRoot        string   `yaml:"source_root"`
	TestRoot          string   `yaml:"test_root"`
	FileExtension     string   `yaml:"file_extension"`
	TestFileSuffix    string   `yaml:"test_file_suffix"`
	TestProjectSuffix string   `yaml:"test_project_suffix"`
	IgnoreDirectories []string `yaml:"ignore_directories,omitempty"`
	IgnoreFiles       []string `yaml:"ignore_files,omitempty"`
	ExcludePatterns   []string `yaml:"exclude_patterns,omitempty"`

	Validations Validations `yaml:"validations,omitempty"`
}

// Validations toggles individual checks. All default to on except the
// missing-test sweep, which is opt-in.
type Validations struct {
	FileName           bool `yaml:"file_name"`
	DirectoryStructure bool `yaml:"directory_structure"`
	MissingTests       bool `yaml:"missing_tests"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		SourceRoot:        "src",
		TestRoot:          "tests",
		FileExtension:     ".cs",
		TestFileSuffix:    "Tests",
		TestProjectSuffix: ".Tests",
		IgnoreDirectories: []string{"bin", "obj"},
		Validations: Validations{
			FileName:           true,
			DirectoryStructure: true,
			MissingTests:       false,
		},
	}
}

// Load reads .testlint.yml from projectPath, falling back to defaults when
// the file does not exist. Roots are resolved against projectPath.
func Load(projectPath string) (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(projectPath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		// Unmarshal over the defaults so omitted keys keep their values.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.normalize(projectPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize resolves roots against projectPath and validates required fields
func (c *Config) normalize(projectPath string) error {
	if c.TestFileSuffix == "" {
		return fmt.Errorf("test_file_suffix must not be empty")
	}
	if c.SourceRoot == "" {
		return fmt.Errorf("source_root must not be empty")
	}
	if c.TestRoot == "" {
		return fmt.Errorf("test_root must not be empty")
	}
	if c.FileExtension != "" && c.FileExtension[0] != '.' {
		c.FileExtension = "." + c.FileExtension
	}

	if !filepath.IsAbs(c.SourceRoot) {
		c.SourceRoot = filepath.Join(projectPath, c.SourceRoot)
	}
	if !filepath.IsAbs(c.TestRoot) {
		c.TestRoot = filepath.Join(projectPath, c.TestRoot)
	}
	return nil
}

// GetSourceRoot implements analyzer.Config interface
func (c *Config) GetSourceRoot() string {
	return c.SourceRoot
}

// GetTestRoot implements analyzer.Config interface
func (c *Config) GetTestRoot() string {
	return c.TestRoot
}

// GetFileExtension implements analyzer.Config interface
func (c *Config) GetFileExtension() string {
	return c.FileExtension
}

// GetTestFileSuffix implements analyzer.Config interface
func (c *Config) GetTestFileSuffix() string {
	return c.TestFileSuffix
}

// GetTestProjectSuffix implements analyzer.Config interface
func (c *Config) GetTestProjectSuffix() string {
	return c.TestProjectSuffix
}

// GetIgnoreDirectories implements analyzer.Config interface
func (c *Config) GetIgnoreDirectories() []string {
	return c.IgnoreDirectories
}

// GetIgnoreFiles implements analyzer.Config interface
func (c *Config) GetIgnoreFiles() []string {
	return c.IgnoreFiles
}

// ShouldValidateFileName implements analyzer.Config interface
func (c *Config) ShouldValidateFileName() bool {
	return c.Validations.FileName
}

// ShouldValidateDirectoryStructure implements analyzer.Config interface
func (c *Config) ShouldValidateDirectoryStructure() bool {
	return c.Validations.DirectoryStructure
}

// ShouldValidateMissingTests implements analyzer.Config interface
func (c *Config) ShouldValidateMissingTests() bool {
	return c.Validations.MissingTests
}
