package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wot-oss/pkgcoll/cmd/completion"
	"github.com/wot-oss/pkgcoll/internal/app/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a package collection for consistency",
	Long: `Check a valid package collection for problems which validation does not detect:
product targets which do not exist in the same version, duplicate package URLs, duplicate versions
and versions which are not semantic versions. Fails if an error is found. Warnings are only reported.`,
	Args:              cobra.ExactArgs(1),
	Run:               executeCheck,
	ValidArgsFunction: completion.CompleteCollectionFiles,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func executeCheck(cmd *cobra.Command, args []string) {
	err := cli.CheckFile(args[0])
	if err != nil {
		cli.Stderrf("check failed")
		os.Exit(1)
	}
}
