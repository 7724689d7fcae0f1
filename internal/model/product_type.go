package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

type ProductKind string

const (
	ProductKindLibrary    ProductKind = "library"
	ProductKindExecutable ProductKind = "executable"
	ProductKindPlugin     ProductKind = "plugin"
	ProductKindSnippet    ProductKind = "snippet"
	ProductKindTest       ProductKind = "test"
	ProductKindMacro      ProductKind = "macro"
)

var productKinds = []ProductKind{
	ProductKindLibrary,
	ProductKindExecutable,
	ProductKindPlugin,
	ProductKindSnippet,
	ProductKindTest,
	ProductKindMacro,
}

type LibraryType string

const (
	LibraryStatic    LibraryType = "static"
	LibraryDynamic   LibraryType = "dynamic"
	LibraryAutomatic LibraryType = "automatic"
)

var libraryTypes = []LibraryType{LibraryStatic, LibraryDynamic, LibraryAutomatic}

var ErrInvalidProductType = errors.New("invalid product type")

// ProductType classifies a product. Only library products carry a LibraryType.
//
// On the wire a product type is an object with exactly one key naming the kind.
// Libraries carry their linkage in a one-element array, all other kinds carry null:
//
//	{"library": ["automatic"]}
//	{"executable": null}
type ProductType struct {
	kind    ProductKind
	library LibraryType
}

var (
	Executable = ProductType{kind: ProductKindExecutable}
	Plugin     = ProductType{kind: ProductKindPlugin}
	Snippet    = ProductType{kind: ProductKindSnippet}
	Test       = ProductType{kind: ProductKindTest}
	Macro      = ProductType{kind: ProductKindMacro}
)

// Library returns the product type of a library with the given linkage.
// Panics if lt is not one of the known library types.
func Library(lt LibraryType) ProductType {
	if !slices.Contains(libraryTypes, lt) {
		panic(fmt.Sprintf("unknown library type: %s", lt))
	}
	return ProductType{kind: ProductKindLibrary, library: lt}
}

func (p ProductType) Kind() ProductKind {
	return p.kind
}

// LibraryType returns the linkage of a library product. Returns false for other kinds.
func (p ProductType) LibraryType() (LibraryType, bool) {
	return p.library, p.kind == ProductKindLibrary
}

func (p ProductType) String() string {
	if p.kind == ProductKindLibrary {
		return fmt.Sprintf("%s (%s)", p.kind, p.library)
	}
	return string(p.kind)
}

func (p ProductType) MarshalJSON() ([]byte, error) {
	switch {
	case p.kind == ProductKindLibrary:
		return json.Marshal(map[ProductKind][]LibraryType{p.kind: {p.library}})
	case slices.Contains(productKinds, p.kind):
		return json.Marshal(map[ProductKind]any{p.kind: nil})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidProductType, p.kind)
	}
}

func (p *ProductType) UnmarshalJSON(data []byte) error {
	var m map[ProductKind]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("%w: expected exactly one kind, found %d", ErrInvalidProductType, len(m))
	}
	for kind, payload := range m {
		if !slices.Contains(productKinds, kind) {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidProductType, kind)
		}
		if kind != ProductKindLibrary {
			if !bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
				return fmt.Errorf("%w: %s must not carry a value", ErrInvalidProductType, kind)
			}
			*p = ProductType{kind: kind}
			return nil
		}
		var lts []LibraryType
		if err := json.Unmarshal(payload, &lts); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProductType, err)
		}
		if len(lts) != 1 || !slices.Contains(libraryTypes, lts[0]) {
			return fmt.Errorf("%w: library requires one of %v", ErrInvalidProductType, libraryTypes)
		}
		*p = ProductType{kind: kind, library: lts[0]}
	}
	return nil
}
