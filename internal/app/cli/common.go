// Package cli contains implementations of CLI commands. The command code is supposed contain only logic specific to
// the CLI and delegate complex/reusable stuff to code in /internal/commands.
// Commands in cli package should print results in human-readable format to stdout.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/wot-oss/pkgcoll/internal/commands/validate"
	"github.com/wot-oss/pkgcoll/internal/model"
	"github.com/wot-oss/pkgcoll/internal/utils"
)

const (
	OutputFormatPlain = "plain"
	OutputFormatJSON  = "json"
)

var ErrInvalidOutputFormat = errors.New("invalid output format, supported formats are: plain, json")

func IsValidOutputFormat(format string) bool {
	return format == OutputFormatPlain || format == OutputFormatJSON
}

// Stderrf prints a message to os.Stderr, followed by newline
func Stderrf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
	_, _ = fmt.Fprintln(os.Stderr)
}

func printJSON(v any) {
	b, err := utils.EncodeJSONWithoutEscapeHTML(v, "  ")
	if err != nil {
		Stderrf("could not print result: %v", err)
		return
	}
	_, _ = os.Stdout.Write(b)
}

// readCollection reads and decodes the named collection file. Errors are reported on stderr.
// Returns the absolute file name along with the collection.
func readCollection(filename string) (string, *model.Collection, error) {
	abs, raw, err := utils.ReadRequiredFile(filename)
	if err != nil {
		Stderrf("could not read file: %v", err)
		return "", nil, err
	}
	c, err := validate.ValidateSupportedCollection(raw)
	if err != nil {
		Stderrf("validation error: %v", err)
		return "", nil, err
	}
	return abs, c, nil
}
