package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wot-oss/pkgcoll/cmd/completion"
	"github.com/wot-oss/pkgcoll/internal/app/cli"
)

var listCmd = &cobra.Command{
	Use:               "list <file>",
	Short:             "List packages of a package collection",
	Long:              `List the packages of a package collection in collection order, with the newest semantic version of each.`,
	Args:              cobra.ExactArgs(1),
	Run:               executeList,
	ValidArgsFunction: completion.CompleteCollectionFiles,
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("format", "f", cli.OutputFormatPlain, "output format, one of [plain, json]")
	_ = listCmd.RegisterFlagCompletionFunc("format", completion.CompleteOutputFormats)
}

func executeList(cmd *cobra.Command, args []string) {
	format := cmd.Flag("format").Value.String()
	err := cli.ListFile(args[0], format)
	if err != nil {
		os.Exit(1)
	}
}
