package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/wot-oss/pkgcoll/internal/commands"
)

const columnWidthName = "PKGCOLL_COLUMNWIDTH"
const columnWidthDefault = 40

func ListFile(filename, format string) error {
	if !IsValidOutputFormat(format) {
		Stderrf("%v", ErrInvalidOutputFormat)
		return ErrInvalidOutputFormat
	}
	_, c, err := readCollection(filename)
	if err != nil {
		return err
	}
	res := commands.ListPackages(*c)
	switch format {
	case OutputFormatJSON:
		printJSON(res)
	case OutputFormatPlain:
		printPackages(res)
	}
	return nil
}

func printPackages(pkgs []commands.PackageSummary) {
	colWidth := columnWidth()
	table := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(table, "NAME\tLATEST\tVERSIONS\tURL\tDESCRIPTION\n")
	for _, p := range pkgs {
		name := elideString(p.Name, colWidth)
		desc := elideString(p.Description, colWidth)
		_, _ = fmt.Fprintf(table, "%s\t%s\t%d\t%s\t%s\n", name, p.Latest, p.Versions, p.URL, desc)
	}
	_ = table.Flush()
}

func elideString(value string, colWidth int) string {
	if len(value) < colWidth {
		return value
	}

	var elidedValue string
	for i, rn := range value {
		elidedValue += string(rn)
		if i >= (colWidth - 4) {
			return elidedValue + "..."
		}
	}
	return value + "..."
}

func columnWidth() int {
	cw, err := strconv.Atoi(os.Getenv(columnWidthName))
	if err != nil {
		cw = columnWidthDefault
	}
	return cw
}
