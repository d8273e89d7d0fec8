package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/GrzesiekP/tests-filestructure-linter/internal/logging"
	"github.com/GrzesiekP/tests-filestructure-linter/internal/output"
	"github.com/GrzesiekP/tests-filestructure-linter/pkg/linter"
)

// errFindings distinguishes "the tree has issues" (exit 1) from internal
// errors (exit 2)
var errFindings = errors.New("findings reported")

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

type rootFlags struct {
	sourceRoot        string
	testRoot          string
	fileExtension     string
	testFileSuffix    string
	testProjectSuffix string
	missingTests      bool
	jsonOutput        bool
	verbose           bool
}

func (f *rootFlags) options(cmd *cobra.Command, args []string) linter.Options {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	opts := linter.Options{
		ProjectPath:       projectPath,
		SourceRoot:        f.sourceRoot,
		TestRoot:          f.testRoot,
		FileExtension:     f.fileExtension,
		TestFileSuffix:    f.testFileSuffix,
		TestProjectSuffix: f.testProjectSuffix,
		Logger:            logging.New(level),
	}
	if cmd.Flags().Changed("missing-tests") {
		opts.MissingTests = &f.missingTests
	}
	return opts
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "testlint [path]",
		Short: "Check that test files mirror the source tree structure",
		Long: `testlint matches each test file to the source file it tests (by its name,
with the test file suffix stripped) and checks that the test file's name and
directory mirror the expected convention. It also detects source files that
have no test file at all.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := linter.Run(flags.options(cmd, args))
			if err != nil {
				return err
			}

			if flags.jsonOutput {
				report := output.NewReport(result.Results, result.CheckedFiles)
				if err := output.WriteJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), output.FormatReport(result.Results, result.CheckedFiles))
			}

			if result.HasFindings() {
				return errFindings
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.sourceRoot, "src", "s", "", "Source root directory (default from .testlint.yml)")
	rootCmd.PersistentFlags().StringVarP(&flags.testRoot, "tests", "t", "", "Test root directory (default from .testlint.yml)")
	rootCmd.PersistentFlags().StringVarP(&flags.fileExtension, "ext", "e", "", "File extension to analyze (e.g. .cs)")
	rootCmd.PersistentFlags().StringVar(&flags.testFileSuffix, "test-file-suffix", "", "Suffix of test file base names (e.g. Tests)")
	rootCmd.PersistentFlags().StringVar(&flags.testProjectSuffix, "test-project-suffix", "", "Suffix of test project directories (e.g. .Tests)")
	rootCmd.PersistentFlags().BoolVarP(&flags.missingTests, "missing-tests", "m", false, "Report source files without a test file")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Debug logging")
	rootCmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print the report as JSON")

	rootCmd.AddCommand(newFixCmd(flags))
	return rootCmd
}

func newFixCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	fixCmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Move misplaced test files to their expected paths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, actions, err := linter.Fix(flags.options(cmd, args), dryRun)
			if err != nil {
				return err
			}

			for _, action := range actions {
				verb := "moved"
				if !action.Applied {
					verb = "would move"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", verb, action.From, action.To)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d findings fixable\n", len(actions), result.Summary.TotalErrors)
			return nil
		},
	}

	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only print what would be moved")
	return fixCmd
}
