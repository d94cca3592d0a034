package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/tocgen/internal/config"
	"github.com/itsmostafa/tocgen/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// Set by loadConfig before any command that needs them runs.
	cfgManager *config.Manager
	logger     = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "tocgen",
	Short: "Extract a table of contents from OCR page JSON",
	Long: `tocgen reads the JSON produced by an OCR pipeline, where every page carries
its text as markdown, and prints the document outline built from the
markdown headings (levels 1 to 4), ordered by page.

Example input:
  {"pages": [{"markdown": "# Introduction\n## Scope", "page_index": 0}]}

Output:
  - Introduction
    - Scope`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tocgen %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tocgen.yaml or ~/.tocgen/tocgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads settings for the command about to run, with that
// command's flags taking precedence, and sets up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	mgr, err := config.NewManager(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := mgr.Get().SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	mgr.SetLogger(logger)

	cfgManager = mgr
	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	return nil
}

// addOutputFlags registers the flags that override output settings.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("indent", "i", 2, "Spaces per heading level")
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().Bool("plain-titles", false, "Strip inline markdown (emphasis, code, links) from titles")
	cmd.Flags().Bool("skip-code-blocks", false, "Ignore headings inside ``` fenced code blocks")
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
