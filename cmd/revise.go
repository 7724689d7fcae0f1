package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/wot-oss/pkgcoll/cmd/completion"
	"github.com/wot-oss/pkgcoll/internal/app/cli"
)

var reviseCmd = &cobra.Command{
	Use:   "revise <file> [--author <name>]",
	Short: "Publish the next revision of a package collection",
	Long: `Increment the revision of a package collection and set its generation time to now.
The file is locked while being revised and replaced atomically.`,
	Args:              cobra.ExactArgs(1),
	Run:               executeRevise,
	ValidArgsFunction: completion.CompleteCollectionFiles,
}

func init() {
	RootCmd.AddCommand(reviseCmd)
	reviseCmd.Flags().StringP("author", "a", "", "name of the author generating the revision. Keeps the current author when not set")
	_ = reviseCmd.RegisterFlagCompletionFunc("author", completion.NoCompletionNoFile)
}

func executeRevise(cmd *cobra.Command, args []string) {
	author := cmd.Flag("author").Value.String()
	err := cli.ReviseFile(context.Background(), args[0], author)
	if err != nil {
		os.Exit(1)
	}
}
