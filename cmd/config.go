package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/itsmostafa/tocgen/internal/config"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tocgen config file",
	// Subcommands load config themselves so a broken file can be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a config file with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "tocgen.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}

		printStatus(cmd.ErrOrStderr(), "Wrote:", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := config.NewManager(cfgFile, nil)
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		source := mgr.ConfigFileUsed()
		if source == "" {
			source = "(defaults)"
		}

		w := cmd.OutOrStdout()
		printStatus(w, "config_file:", source)
		printStatus(w, "indent_size:", strconv.Itoa(cfg.IndentSize))
		printStatus(w, "format:", cfg.Format)
		printStatus(w, "plain_titles:", strconv.FormatBool(cfg.PlainTitles))
		printStatus(w, "skip_code_blocks:", strconv.FormatBool(cfg.SkipCodeBlocks))
		printStatus(w, "log_level:", cfg.LogLevel)
		printStatus(w, "watch_debounce:", cfg.WatchDebounce.String())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
