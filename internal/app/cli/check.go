package cli

import (
	"errors"
	"fmt"

	"github.com/wot-oss/pkgcoll/internal/commands"
	"github.com/wot-oss/pkgcoll/internal/model"
)

var errCheckFailed = errors.New("consistency check failed")

func CheckFile(filename string) error {
	_, c, err := readCollection(filename)
	if err != nil {
		return err
	}

	fmt.Printf("Checking consistency of package collection %s ...\n", filename)

	for _, res := range commands.CheckCollection(*c) {
		if res.Typ != model.CheckOK {
			fmt.Println(res)
		}
		if err == nil && res.Typ == model.CheckErr {
			err = errCheckFailed
		}
	}
	return err
}
