package main

import (
	"github.com/wot-oss/pkgcoll/cmd"
	"github.com/wot-oss/pkgcoll/internal/config"
)

func init() {
	config.InitConfig()
}

func main() {
	cmd.Execute()
}
