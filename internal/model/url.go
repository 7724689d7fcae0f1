package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

var ErrInvalidURL = errors.New("invalid URL")

// URL is a syntactically valid absolute URL. It is never dereferenced by this package.
// The zero value is an empty URL, which is not valid in a document.
type URL struct {
	raw string
}

func ParseURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, fmt.Errorf("%w: %s: %w", ErrInvalidURL, s, err)
	}
	if !u.IsAbs() {
		return URL{}, fmt.Errorf("%w: %s - must be absolute", ErrInvalidURL, s)
	}
	return URL{raw: s}, nil
}

func MustParseURL(s string) URL {
	u, err := ParseURL(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URL) String() string {
	return u.raw
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.raw)
}

func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseURL(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
