package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// copyCmd sends a file, or standard input, to the system clipboard.
var copyCmd = &cobra.Command{
	Use:   "copy [file]",
	Short: "Copy a file or standard input to the clipboard",
	Long: `Copy the contents of a file to the system clipboard. With no argument the
text is read from standard input, so "repocat copy repocat.md" and
"cat repocat.md | repocat copy" are equivalent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		source := "stdin"
		if len(args) == 1 {
			source = args[0]
			data, err = os.ReadFile(source)
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}

		if err := newCopier().Copy(string(data)); err != nil {
			return err
		}
		logger.Info("Copied to clipboard", zap.String("source", source), zap.Int("bytes", len(data)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(copyCmd)
}
