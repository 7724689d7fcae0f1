package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/wot-oss/pkgcoll/internal/model"
)

//go:embed collection.schema.json
var collectionSchema string

const collectionSchemaUrl = "resource://collection.schema.json"

var collectionValidator *jsonschema.Schema

var errTrailingData = errors.New("unexpected data after top-level value")

func init() {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	c.AssertFormat = true
	err := c.AddResource(collectionSchemaUrl, strings.NewReader(collectionSchema))
	if err != nil {
		panic(err)
	}
	collectionValidator = c.MustCompile(collectionSchemaUrl)
}

// ValidateCollection decodes raw as a package collection document. The whole document is decoded or none of it.
// Required fields, value types, timestamps and URLs are validated. The format version is not checked against
// the supported versions, so documents of other format versions are decoded as raw data.
// Keys are matched exactly. Unknown keys are ignored and null optional values are treated as absent.
// Returns *model.DecodeError on failure.
func ValidateCollection(raw []byte) (*model.Collection, error) {
	log := slog.Default()

	parsed, err := parseJSON(raw)
	if err != nil {
		return nil, toDecodeError(err)
	}

	err = collectionValidator.Validate(parsed)
	if err != nil {
		log.Debug("package collection failed schema validation", "error", err)
		return nil, toDecodeError(err)
	}

	known, err := json.Marshal(prune(parsed, collectionValidator))
	if err != nil {
		return nil, toDecodeError(err)
	}
	c := &model.Collection{}
	err = json.Unmarshal(known, c)
	if err != nil {
		return nil, toDecodeError(err)
	}
	log.Debug("decoded package collection", "title", c.Title, "formatVersion", c.FormatVersion, "packages", len(c.Packages))
	return c, nil
}

func parseJSON(raw []byte) (any, error) {
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	var parsed any
	if err := d.Decode(&parsed); err != nil {
		return nil, err
	}
	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return parsed, nil
}

// prune keeps only the object keys declared in s, matched exactly, so that the case-insensitive
// struct mapping of encoding/json cannot pick up keys outside the wire format.
func prune(v any, s *jsonschema.Schema) any {
	for s != nil && s.Ref != nil {
		s = s.Ref
	}
	if s == nil {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(t))
		for k, val := range t {
			if ps, ok := s.Properties[k]; ok {
				res[k] = prune(val, ps)
			}
		}
		return res
	case []any:
		items, _ := s.Items.(*jsonschema.Schema)
		res := make([]any, len(t))
		for i, val := range t {
			res[i] = prune(val, items)
		}
		return res
	}
	return v
}

// ValidateSupportedCollection decodes raw like ValidateCollection and additionally rejects documents with
// a format version which is not supported. Such documents are rejected before the rest is decoded.
func ValidateSupportedCollection(raw []byte) (*model.Collection, error) {
	if v, err := PeekFormatVersion(raw); err == nil && !v.IsSupported() {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedFormatVersion, v)
	}
	return ValidateCollection(raw)
}

// PeekFormatVersion reads the format version of a document without decoding the rest of it.
func PeekFormatVersion(raw []byte) (model.FormatVersion, error) {
	v, err := jsonparser.GetString(raw, "formatVersion")
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return "", model.NewDecodeError("", "missing properties: 'formatVersion'", err)
		}
		return "", model.NewDecodeError("/formatVersion", err.Error(), err)
	}
	return model.FormatVersion(v), nil
}

func toDecodeError(err error) error {
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		leaf := ve
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		return model.NewDecodeError(leaf.InstanceLocation, leaf.Message, err)
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return model.NewDecodeError("", fmt.Sprintf("malformed JSON at offset %d: %v", se.Offset, se), err)
	}
	var pe *time.ParseError
	if errors.As(err, &pe) {
		return model.NewDecodeError("/generatedAt", err.Error(), err)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return model.NewDecodeError("", "malformed JSON: unexpected end of input", err)
	}
	if errors.Is(err, errTrailingData) {
		return model.NewDecodeError("", "malformed JSON: "+err.Error(), err)
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		path := ""
		if te.Field != "" {
			path = "/" + strings.ReplaceAll(te.Field, ".", "/")
		}
		return model.NewDecodeError(path, fmt.Sprintf("expected %s, found %s", te.Type, te.Value), err)
	}
	return model.NewDecodeError("", err.Error(), err)
}
