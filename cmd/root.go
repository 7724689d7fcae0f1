package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wot-oss/pkgcoll/internal"
	"github.com/wot-oss/pkgcoll/internal/config"
)

const (
	flagLogLevel = "loglevel"
	flagConfig   = "config"
)

var envConfigDir = strings.ToUpper(config.EnvPrefix + "_" + flagConfig) // PKGCOLL_CONFIG

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pkgcoll",
	Short: "A CLI tool for package collection documents",
	Long: `pkgcoll validates, formats, checks, lists and revises package collection documents,
curated lists of packages with the metadata of their released versions.`,
	PersistentPreRun: preRunAll,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP(flagLogLevel, "l", "", "enable logging by setting a log level, one of [error, warn, info, debug, off]")
	RootCmd.PersistentFlags().String(flagConfig, "", "directory to read config.json from (default is ~/.pkgcoll, env "+envConfigDir+")")
	_ = RootCmd.MarkPersistentFlagDirname(flagConfig)
}

func preRunAll(cmd *cobra.Command, args []string) {
	if dir := configDir(cmd); dir != "" {
		config.DefaultConfigDir = dir
	}
	config.InitViper()
	if f := cmd.Flag(flagLogLevel); f != nil {
		_ = viper.BindPFlag(config.KeyLogLevel, f)
	}
	internal.InitLogging()
}

func configDir(cmd *cobra.Command) string {
	if f := cmd.Flag(flagConfig); f != nil && f.Changed {
		return f.Value.String()
	}
	return os.Getenv(envConfigDir)
}
