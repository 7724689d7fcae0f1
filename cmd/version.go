package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wot-oss/pkgcoll/internal/config"
	"github.com/wot-oss/pkgcoll/internal/utils"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show pkgcoll version information",
	Long:  `Show pkgcoll version information`,
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pkgcoll version %s\n", utils.GetPkgcollVersion())
		cf := viper.ConfigFileUsed()
		if cf == "" {
			cf = fmt.Sprintf("No config.json file found in '%s'. Using default settings", config.DefaultConfigDir)
		}
		fmt.Printf("Configuration file used: %s\n", cf)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
