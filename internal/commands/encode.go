package commands

import (
	"fmt"

	"github.com/wot-oss/pkgcoll/internal/model"
	"github.com/wot-oss/pkgcoll/internal/utils"
)

// EncodeCollection encodes c as a package collection document. Sequence order is kept as is.
// The encoding is deterministic for a given value. Panics if c cannot be encoded, which only happens for values
// that were not built through the model constructors (e.g. a zero ProductType).
func EncodeCollection(c model.Collection, indent string) []byte {
	b, err := utils.EncodeJSONWithoutEscapeHTML(c, indent)
	if err != nil {
		panic(fmt.Sprintf("cannot encode package collection %q: %v", c.Title, err))
	}
	return b
}
