package completion

import (
	"github.com/spf13/cobra"
	"github.com/wot-oss/pkgcoll/internal/app/cli"
)

func NoCompletionNoFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// CompleteCollectionFiles completes the single collection file argument with .json files
func CompleteCollectionFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}

func CompleteOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{cli.OutputFormatPlain, cli.OutputFormatJSON}, cobra.ShellCompDirectiveNoFileComp
}
