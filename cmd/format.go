package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wot-oss/pkgcoll/cmd/completion"
	"github.com/wot-oss/pkgcoll/internal/app/cli"
)

var formatCmd = &cobra.Command{
	Use:   "format <file> [--write]",
	Short: "Format a package collection canonically",
	Long: `Decode a package collection document and encode it again in canonical form.
The result is printed to stdout, unless --write is given, in which case the file is replaced.
The indentation can be configured with the 'indent' setting ("none" for compact output).`,
	Args:              cobra.ExactArgs(1),
	Run:               executeFormat,
	ValidArgsFunction: completion.CompleteCollectionFiles,
}

func init() {
	RootCmd.AddCommand(formatCmd)
	formatCmd.Flags().BoolP("write", "w", false, "write the result to the file instead of stdout")
}

func executeFormat(cmd *cobra.Command, args []string) {
	write, _ := cmd.Flags().GetBool("write")
	err := cli.FormatFile(args[0], write)
	if err != nil {
		os.Exit(1)
	}
}
