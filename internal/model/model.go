package model

import (
	"fmt"
	"reflect"
	"time"
)

// FormatVersion is the version of the package collection format a document conforms to.
type FormatVersion string

const FormatVersion1_0 FormatVersion = "1.0"

// IsSupported reports whether v is a format version this model implements.
// Decoded documents should be checked with IsSupported before being passed to NewCollection.
func (v FormatVersion) IsSupported() bool {
	return v == FormatVersion1_0
}

// Collection is the root of a package collection document.
// Values are treated as immutable: build a new Collection to represent a change.
type Collection struct {
	Title string `json:"title"`
	// Description is a free-form summary of the collection.
	Description   *string       `json:"description,omitempty"`
	Keywords      []string      `json:"keywords,omitzero"`
	Packages      []Package     `json:"packages"`
	FormatVersion FormatVersion `json:"formatVersion"`
	// Revision is increased by convention every time the collection is regenerated. It is not enforced.
	Revision    *int      `json:"revision,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
	GeneratedBy *Author   `json:"generatedBy,omitempty"`
}

type Author struct {
	Name string `json:"name"`
}

func NewAuthor(name string) Author {
	return Author{Name: name}
}

type CollectionOption func(*Collection)

func WithDescription(description string) CollectionOption {
	return func(c *Collection) {
		c.Description = &description
	}
}

// WithKeywords sets the keywords of the collection. Passing no keywords sets an empty, but present list.
func WithKeywords(keywords ...string) CollectionOption {
	return func(c *Collection) {
		c.Keywords = append(make([]string, 0, len(keywords)), keywords...)
	}
}

func WithRevision(revision int) CollectionOption {
	return func(c *Collection) {
		c.Revision = &revision
	}
}

func WithGeneratedAt(t time.Time) CollectionOption {
	return func(c *Collection) {
		c.GeneratedAt = t
	}
}

func WithGeneratedBy(author Author) CollectionOption {
	return func(c *Collection) {
		c.GeneratedBy = &author
	}
}

// NewCollection creates a Collection. GeneratedAt defaults to the current time.
// Panics if formatVersion is not supported.
func NewCollection(title string, packages []Package, formatVersion FormatVersion, opts ...CollectionOption) Collection {
	if !formatVersion.IsSupported() {
		panic(fmt.Sprintf("unsupported format version: %s", formatVersion))
	}
	if packages == nil {
		packages = []Package{}
	}
	c := Collection{
		Title:         title,
		Packages:      packages,
		FormatVersion: formatVersion,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.GeneratedAt.IsZero() {
		c.GeneratedAt = time.Now()
	}
	// drop the monotonic clock reading, it does not survive encoding
	c.GeneratedAt = c.GeneratedAt.Round(0)
	return c
}

// Equal reports whether c and o are structurally equal. GeneratedAt is compared as an instant,
// so the same moment in different locations is considered equal.
func (c Collection) Equal(o Collection) bool {
	if !c.GeneratedAt.Equal(o.GeneratedAt) {
		return false
	}
	c.GeneratedAt, o.GeneratedAt = time.Time{}, time.Time{}
	return reflect.DeepEqual(c, o)
}
