package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyLog         = "log"
	KeyLogLevel    = "logLevel"
	KeyIndent      = "indent"
	KeyLockTimeout = "lockTimeout"
	EnvPrefix      = "pkgcoll"

	DefaultIndent      = "  "
	DefaultLockTimeout = 5 * time.Second
)

var HomeDir string
var DefaultConfigDir string

func InitConfig() {
	var err error
	HomeDir, err = os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultConfigDir = filepath.Join(HomeDir, ".pkgcoll")
}

func InitViper() {
	viper.SetDefault(KeyLog, false)
	viper.SetDefault(KeyIndent, DefaultIndent)
	viper.SetDefault(KeyLockTimeout, DefaultLockTimeout)

	viper.SetConfigType("json")
	viper.SetConfigName("config")
	viper.AddConfigPath(DefaultConfigDir)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; do nothing and rely on defaults
		} else {
			panic("cannot read config: " + err.Error())
		}
	}
	// the environment variables have to match pattern "pkgcoll_<viper variable>", lower or uppercase
	viper.SetEnvPrefix(EnvPrefix)

	_ = viper.BindEnv(KeyLog)         // env variable name = PKGCOLL_LOG
	_ = viper.BindEnv(KeyLogLevel)    // env variable name = PKGCOLL_LOGLEVEL
	_ = viper.BindEnv(KeyIndent)      // env variable name = PKGCOLL_INDENT
	_ = viper.BindEnv(KeyLockTimeout) // env variable name = PKGCOLL_LOCKTIMEOUT
}

// Indent returns the indentation used when writing collection files. "none" or an empty value disable indentation.
func Indent() string {
	in := viper.GetString(KeyIndent)
	if in == "none" {
		return ""
	}
	return in
}

// LockTimeout returns how long to wait for the lock on a collection file. Invalid or non-positive values
// yield DefaultLockTimeout.
func LockTimeout() time.Duration {
	d := viper.GetDuration(KeyLockTimeout)
	if d <= 0 {
		return DefaultLockTimeout
	}
	return d
}
