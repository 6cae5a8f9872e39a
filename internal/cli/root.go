// Package cli implements the shardvault command-line interface.
//
// State is initialized in PersistentPreRunE and exposed to subcommands both
// via package-level globals and via GetCmdContext(cmd) for testability.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shardvault/shardvault/internal/config"
	"github.com/shardvault/shardvault/internal/output"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

var (
	// Global flags
	homeDir      string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter

	// Command context for dependency injection
	cmdCtx *CommandContext
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shardvault",
	Short: "Split and reconstruct secrets with Shamir's Secret Sharing",
	Long: `shardvault splits an arbitrary secret into n shares such that any k of
them reconstruct the original, using Shamir's Secret Sharing over GF(256).
Shares may optionally be protected with a passphrase-based crypto envelope,
and can be rendered as Base58Check, Base64URL, or BIP39 mnemonic text.

Example:
  shardvault split --k 3 --n 5 --in secret.txt --out shares/
  shardvault combine --in shares/share-1-of-5.txt --in shares/share-2-of-5.txt --in shares/share-3-of-5.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute() error {
	walkCommands(rootCmd, enrichParentLong)

	err := rootCmd.Execute()
	if err != nil {
		formatErr(err)
		return err
	}
	return nil
}

// formatErr prints the error with proper formatting.
func formatErr(err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	if fmtErr := output.FormatError(os.Stderr, err, format); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (formatting failed: %v)\n", err, fmtErr)
	}
}

// ExitCode returns the appropriate process exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if shardvaulterr.OfKind(err, shardvaulterr.KindInvalidInput) ||
		shardvaulterr.OfKind(err, shardvaulterr.KindInvalidKAndN) ||
		shardvaulterr.OfKind(err, shardvaulterr.KindInvalidX) {
		return 2
	}
	return 1
}

// initGlobals initializes global configuration, logger, and formatter.
func initGlobals(cmd *cobra.Command) error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	configPath := config.Path(home)
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.Defaults()
			cfg.Home = home
		} else {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
			cfg = config.Defaults()
			cfg.Home = home
		}
	}

	config.ApplyEnvironment(cfg)

	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		cfg.Output.DefaultFormat = outputFormat
	}

	if strings.HasPrefix(cfg.Home, "~/") {
		if userHome, homeErr := os.UserHomeDir(); homeErr == nil {
			cfg.Home = filepath.Join(userHome, cfg.Home[2:])
		}
	}

	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
	}

	explicitFormat := output.ParseFormat(cfg.Output.DefaultFormat)
	detectedFormat := output.DetectFormat(os.Stdout, explicitFormat)
	formatter = output.NewFormatter(detectedFormat, os.Stdout)

	cmdCtx = NewCommandContext(cfg, logger, formatter)
	SetCmdContext(cmd, cmdCtx)

	return nil
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// Context returns the global command context.
func Context() *CommandContext {
	return cmdCtx
}

// Version information, set at build time.
//
//nolint:gochecknoglobals // Version info set at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd shows version information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version, build commit, and build date.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if formatter != nil && formatter.Format() == output.FormatJSON {
			cmd.Println("{")
			cmd.Printf(`  "version": "%s",`+"\n", Version)
			cmd.Printf(`  "commit": "%s",`+"\n", GitCommit)
			cmd.Printf(`  "date": "%s"`+"\n", BuildDate)
			cmd.Println("}")
		} else {
			cmd.Printf("shardvault version %s\n", Version)
			cmd.Printf("  commit: %s\n", GitCommit)
			cmd.Printf("  built:  %s\n", BuildDate)
		}
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "shardvault data directory (default: ~/.shardvault)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
