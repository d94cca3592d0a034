package cmd

import (
	"errors"
	"io"

	"github.com/itsmostafa/tocgen/internal/config"
	"github.com/itsmostafa/tocgen/internal/toc"
	"github.com/itsmostafa/tocgen/internal/watch"
	"github.com/spf13/cobra"
)

var extractWatch bool

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Print the table of contents of an OCR JSON document",
	Long: `Print the table of contents of an OCR JSON document.

FILE may be "-" to read the document from standard input. With --watch the
outline is printed again every time FILE or the config file changes.

Examples:
  tocgen extract paper_ocr.json
  tocgen extract paper_ocr.json --indent 4
  tocgen extract paper_ocr.json --format json
  cat paper_ocr.json | tocgen extract -
  tocgen extract paper_ocr.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !extractWatch {
			_, err := extractOnce(cmd, path, cfgManager.Get())
			return err
		}

		if path == "-" {
			return errors.New("--watch needs a file path, not standard input")
		}

		w := watch.New(path, func() error {
			n, err := extractOnce(cmd, path, cfgManager.Get())
			if err != nil {
				return err
			}
			printRebuilt(cmd.ErrOrStderr(), path, n)
			return nil
		},
			watch.WithDebounce(cfgManager.Get().WatchDebounce),
			watch.WithLogger(logger),
		)

		cfgManager.OnChange(func(*config.Config) { w.Trigger() })
		cfgManager.WatchConfig()

		printStatus(cmd.ErrOrStderr(), "Watching:", path)
		return w.Run(cmd.Context())
	},
}

// extractOnce loads the document at path and writes its headings in the
// configured format. It returns the number of headings written.
func extractOnce(cmd *cobra.Command, path string, cfg *config.Config) (int, error) {
	format, err := toc.ParseFormat(cfg.Format)
	if err != nil {
		return 0, err
	}

	var headings []toc.Heading
	if path == "-" {
		headings, err = collectReader(cmd.InOrStdin(), cfg)
	} else {
		headings, err = toc.LoadAndCollect(path, cfg.BuildOptions(logger)...)
	}
	if err != nil {
		return 0, err
	}

	if err := toc.Write(cmd.OutOrStdout(), format, headings, cfg.IndentSize); err != nil {
		return 0, err
	}
	return len(headings), nil
}

func collectReader(r io.Reader, cfg *config.Config) ([]toc.Heading, error) {
	doc, err := toc.LoadReader(r, "stdin")
	if err != nil {
		return nil, err
	}
	return toc.Collect(doc, cfg.BuildOptions(logger)...)
}

func init() {
	addOutputFlags(extractCmd)
	extractCmd.Flags().BoolVarP(&extractWatch, "watch", "w", false, "Rebuild whenever the file changes")
	extractCmd.Flags().Duration("debounce", watch.DefaultDebounce, "Wait this long for writes to settle in watch mode")

	rootCmd.AddCommand(extractCmd)
}
