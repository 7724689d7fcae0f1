package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wot-oss/pkgcoll/cmd/completion"
	"github.com/wot-oss/pkgcoll/internal/app/cli"
)

var validateCmd = &cobra.Command{
	Use:               "validate <file>",
	Short:             "Validate a package collection",
	Long:              `Validate a package collection document. Fails on missing or malformed fields and on format versions other than 1.0.`,
	Args:              cobra.ExactArgs(1),
	Run:               executeValidate,
	ValidArgsFunction: completion.CompleteCollectionFiles,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func executeValidate(cmd *cobra.Command, args []string) {
	err := cli.ValidateFile(args[0])
	if err != nil {
		os.Exit(1)
	}
}
