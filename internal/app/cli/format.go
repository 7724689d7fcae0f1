package cli

import (
	"fmt"
	"os"

	"github.com/wot-oss/pkgcoll/internal/commands"
	"github.com/wot-oss/pkgcoll/internal/config"
	"github.com/wot-oss/pkgcoll/internal/utils"
)

// FormatFile re-encodes the named collection file canonically. The result is written to stdout, or back to the
// file when inPlace is true.
func FormatFile(filename string, inPlace bool) error {
	abs, c, err := readCollection(filename)
	if err != nil {
		return err
	}
	raw := commands.EncodeCollection(*c, config.Indent())
	if !inPlace {
		_, _ = os.Stdout.Write(raw)
		return nil
	}

	stat, err := os.Stat(abs)
	if err != nil {
		Stderrf("could not read file: %v", err)
		return err
	}
	err = utils.AtomicWriteFile(abs, raw, stat.Mode().Perm())
	if err != nil {
		Stderrf("could not write file: %v", err)
		return err
	}
	fmt.Printf("formatted %s\n", filename)
	return nil
}
