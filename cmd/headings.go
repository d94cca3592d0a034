package cmd

import (
	"github.com/itsmostafa/tocgen/internal/toc"
	"github.com/spf13/cobra"
)

var headingsPage int

var headingsCmd = &cobra.Command{
	Use:   "headings FILE",
	Short: "Print the outline of a single markdown file",
	Long: `Print the outline of a single markdown file, treated as one OCR page.

Useful for checking a page's markdown before it is assembled into a
document. Headings are detected exactly as in "tocgen extract".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgManager.Get()
		format, err := toc.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}

		text, err := toc.LoadMarkdown(args[0])
		if err != nil {
			return err
		}

		headings := toc.Scan(text, headingsPage, cfg.ScanOptions()...)
		logger.Debug("scanned markdown", "file", args[0], "headings", len(headings))

		return toc.Write(cmd.OutOrStdout(), format, headings, cfg.IndentSize)
	},
}

func init() {
	addOutputFlags(headingsCmd)
	headingsCmd.Flags().IntVar(&headingsPage, "page", 0, "Page index to report for the headings")

	rootCmd.AddCommand(headingsCmd)
}
