package cli

import (
	"fmt"
)

func ValidateFile(filename string) error {
	_, c, err := readCollection(filename)
	if err != nil {
		return err
	}
	fmt.Printf("validated successfully: %s (%d packages)\n", filename, len(c.Packages))
	return nil
}
