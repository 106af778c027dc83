// Root command for the silben CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dm-prime/silben"
)

// Global flag values.
var (
	flagConfig  string
	flagMarker  string
	flagStrip   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "silben [file...]",
	Short: "silben inserts soft hyphens into German text",
	Long: `silben is a filter that inserts soft hyphens (U+00AD) into German
text at plausible syllable boundaries, so long compounds can wrap on
narrow displays. It reads the given files, or standard input when no
file is named, and writes the hyphenated text to standard output.

Whitespace passes through unchanged; stripping the inserted markers
reconstructs the input exactly.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(flagConfig, cmd); err != nil {
			return err
		}
		initLogger(flagVerbose)
		return nil
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .silben.yaml in the working directory or $HOME)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().StringVar(&flagMarker, "marker", "", "replace inserted soft hyphens with this marker in the output")
	rootCmd.Flags().BoolVar(&flagStrip, "strip", false, "remove soft hyphens instead of inserting them")

	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return process(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		err = process(f, cmd.OutOrStdout())
		f.Close()
		if err != nil {
			return fmt.Errorf("process %s: %w", path, err)
		}
	}
	return nil
}

// process reads all of r, transforms it, and writes the result to w. The
// whole input is read at once so whitespace, including line endings, passes
// through exactly as the engine guarantees.
func process(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text := string(data)

	var out string
	if flagStrip {
		out = silben.Strip(text)
	} else {
		out = silben.HyphenateText(text)
		if flagMarker != "" {
			out = strings.ReplaceAll(out, string(silben.SoftHyphen), flagMarker)
		}
	}

	logger().Debug("processed input",
		zap.Int("bytes_in", len(text)),
		zap.Int("bytes_out", len(out)),
		zap.Bool("strip", flagStrip))

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
