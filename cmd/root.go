package cmd

import (
	"fmt"
	"io"
	"os"

	"repocat/pkg/clipboard"
	"repocat/pkg/logging"
	"repocat/pkg/report"
	"repocat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	appName        = "repocat"
	successColor   = "\x1b[32m"
	resetColor     = "\x1b[0m"
	successMessage = "Wrote to %s"
)

var (
	logger = zap.NewNop()

	// newCopier is replaced in tests.
	newCopier = func() clipboard.Copier { return clipboard.NewService() }
)

// RootCmd is the base command. Run without a subcommand it writes the report.
var RootCmd = &cobra.Command{
	Use:   appName,
	Short: "Concatenate a project's text files into one markdown report",
	Long: `repocat walks a project directory, drops ignored and binary files, and writes a
single markdown document holding a file tree followed by every remaining text file,
ready to paste into an LLM prompt.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if !debug {
			return nil
		}
		if err := logging.Setup(true, appName, version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = logging.Logger
		return nil
	},
	RunE: runReport,
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	addReportFlags(RootCmd)
}

func addReportFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("dir", "d", ".", "Project directory to snapshot")
	flags.StringP("output", "o", report.DefaultOutputName, "Report file name, relative to the project directory")
	flags.String("config", "", "Configuration file (default <dir>/"+report.ConfigFileName+")")
	flags.Bool("allow-missing-gitignore", false, "Continue without gitignore rules when "+report.GitIgnoreFileName+" is absent")
	flags.BoolP("copy", "c", false, "Copy the report to the clipboard after writing it")
}

// Execute runs the root command with the provided logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	// Generate writes the report; only startup failures come back as errors
	result, err := report.Generate(cfg, newCopier(), logger)
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), cfg.OutputName)
	logger.Debug("Report summary",
		zap.String("output", result.OutputPath),
		zap.Strings("binary", result.Binary),
		zap.Strings("failed", result.Failed))
	return nil
}

// configFromFlags layers the configuration file and explicit flags over the
// defaults.
func configFromFlags(cmd *cobra.Command) (report.Config, error) {
	flags := cmd.Flags()
	cfg := report.DefaultConfig()

	dir, err := flags.GetString("dir")
	if err != nil {
		return cfg, fmt.Errorf("error reading flags: %w", err)
	}
	cfg.Root = dir

	configPath, err := flags.GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("error reading flags: %w", err)
	}
	cfg, err = report.LoadConfig(cfg, configPath)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("output") {
		if cfg.OutputName, err = flags.GetString("output"); err != nil {
			return cfg, fmt.Errorf("error reading flags: %w", err)
		}
	}
	if flags.Changed("allow-missing-gitignore") {
		allow, err := flags.GetBool("allow-missing-gitignore")
		if err != nil {
			return cfg, fmt.Errorf("error reading flags: %w", err)
		}
		cfg.RequireGitignore = !allow
	}
	if flags.Changed("copy") {
		if cfg.CopyToClipboard, err = flags.GetBool("copy"); err != nil {
			return cfg, fmt.Errorf("error reading flags: %w", err)
		}
	}
	return cfg, nil
}

// printSuccess writes the completion notice, in green when w is a terminal.
func printSuccess(w io.Writer, outputName string) {
	message := fmt.Sprintf(successMessage, outputName)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		message = successColor + message + resetColor
	}
	fmt.Fprintln(w, message)
}
