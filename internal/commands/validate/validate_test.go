package validate

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wot-oss/pkgcoll/internal/model"
	"github.com/wot-oss/pkgcoll/internal/testutils"
	"github.com/wot-oss/pkgcoll/internal/utils"
)

const foobarCollection = `{
  "title": "Test",
  "packages": [{
    "url": "https://example.com/repos/foobar.git",
    "versions": [{
      "version": "1.3.2",
      "packageName": "Foobar",
      "targets": [{"name": "Foo"}],
      "products": [{"name": "Bar", "type": {"library": ["automatic"]}, "targets": ["Foo"]}],
      "toolsVersion": "5.2"
    }]
  }],
  "formatVersion": "1.0",
  "generatedAt": "2020-10-22T06:03:52Z"
}`

func encode(t *testing.T, c model.Collection, indent string) []byte {
	t.Helper()
	raw, err := utils.EncodeJSONWithoutEscapeHTML(c, indent)
	require.NoError(t, err)
	return raw
}

func assertDecodeError(t *testing.T, err error, path, msg string) {
	t.Helper()
	var de *model.DecodeError
	if assert.ErrorAs(t, err, &de) {
		assert.Equal(t, path, de.Path)
		assert.Contains(t, de.Message, msg)
	}
	assert.ErrorIs(t, err, model.ErrInvalidCollection)
}

func TestValidateCollection_Foobar(t *testing.T) {
	c, err := ValidateCollection([]byte(foobarCollection))
	require.NoError(t, err)

	assert.Equal(t, "Test", c.Title)
	assert.Equal(t, model.FormatVersion1_0, c.FormatVersion)
	require.Len(t, c.Packages, 1)
	p := c.Packages[0]
	assert.Equal(t, model.MustParseURL("https://example.com/repos/foobar.git"), p.URL)
	require.Len(t, p.Versions, 1)
	v := p.Versions[0]
	assert.Equal(t, "1.3.2", v.Version)
	assert.Equal(t, "Foobar", v.PackageName)
	assert.Equal(t, "5.2", v.ToolsVersion)
	assert.Equal(t, []model.Target{{Name: "Foo"}}, v.Targets)
	assert.Equal(t, []model.Product{{Name: "Bar", Type: model.Library(model.LibraryAutomatic), Targets: []string{"Foo"}}}, v.Products)
	_, found := v.FindTarget(v.Products[0].Targets[0])
	assert.True(t, found)

	// and optional fields are absent rather than defaulted
	assert.Nil(t, c.Description)
	assert.Nil(t, c.Keywords)
	assert.Nil(t, c.Revision)
	assert.Nil(t, c.GeneratedBy)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Keywords)
	assert.Nil(t, p.ReadmeURL)
	assert.Nil(t, v.MinimumPlatformVersions)
	assert.Nil(t, v.VerifiedPlatforms)
	assert.Nil(t, v.VerifiedSwiftVersions)
	assert.Nil(t, v.License)
	assert.Nil(t, v.Targets[0].ModuleName)
}

func TestValidateCollection_RoundTrip(t *testing.T) {
	tests := []model.Collection{
		testutils.SampleCollection(),
		model.NewCollection("Minimal", nil, model.FormatVersion1_0),
		model.NewCollection("Ordered", []model.Package{
			testutils.MinimalPackage("https://example.com/c.git", "3.0.0"),
			testutils.MinimalPackage("https://example.com/a.git", "1.0.0"),
			testutils.MinimalPackage("https://example.com/b.git", "2.0.0"),
		}, model.FormatVersion1_0, model.WithKeywords()),
	}
	for _, in := range tests {
		for _, indent := range []string{"", "  "} {
			raw := encode(t, in, indent)
			out, err := ValidateCollection(raw)
			require.NoError(t, err, "title %s", in.Title)
			assert.True(t, in.Equal(*out), "title %s", in.Title)
			assert.Equal(t, in.Packages, out.Packages)
		}
	}
}

func TestValidateCollection_KeepsPackageOrder(t *testing.T) {
	in := model.NewCollection("Ordered", []model.Package{
		testutils.MinimalPackage("https://example.com/a.git", "1.0.0"),
		testutils.MinimalPackage("https://example.com/b.git", "1.0.0"),
		testutils.MinimalPackage("https://example.com/c.git", "1.0.0"),
	}, model.FormatVersion1_0)

	out, err := ValidateCollection(encode(t, in, ""))
	require.NoError(t, err)

	var urls []string
	for _, p := range out.Packages {
		urls = append(urls, p.URL.String())
	}
	assert.Equal(t, []string{"https://example.com/a.git", "https://example.com/b.git", "https://example.com/c.git"}, urls)
}

func TestValidateCollection_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		path   string
		msg    string
	}{
		{"title", `"title": "Test",`, "", "missing properties: 'title'"},
		{"generatedAt", `,
  "generatedAt": "2020-10-22T06:03:52Z"`, "", "missing properties: 'generatedAt'"},
		{"formatVersion", `
  "formatVersion": "1.0",`, "", "missing properties: 'formatVersion'"},
		{"url", `"url": "https://example.com/repos/foobar.git",`, "/packages/0", "missing properties: 'url'"},
		{"version", `"version": "1.3.2",`, "/packages/0/versions/0", "missing properties: 'version'"},
		{"packageName", `"packageName": "Foobar",`, "/packages/0/versions/0", "missing properties: 'packageName'"},
		{"toolsVersion", `,
      "toolsVersion": "5.2"`, "/packages/0/versions/0", "missing properties: 'toolsVersion'"},
		{"target name", `{"name": "Foo"}`, "/packages/0/versions/0/targets/0", "missing properties: 'name'"},
		{"product targets", `, "targets": ["Foo"]}`, "/packages/0/versions/0/products/0", "missing properties: 'targets'"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Contains(t, foobarCollection, test.remove)
			replacement := ""
			switch test.name {
			case "target name":
				replacement = "{}"
			case "product targets":
				replacement = "}"
			}
			raw := strings.Replace(foobarCollection, test.remove, replacement, 1)

			c, err := ValidateCollection([]byte(raw))
			assert.Nil(t, c)
			assertDecodeError(t, err, test.path, test.msg)
		})
	}
}

func TestValidateCollection_Invalid(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		path string
		msg  string
	}{
		{"title type", `"title": "Test"`, `"title": 42`, "/title", "expected string"},
		{"malformed timestamp", `"2020-10-22T06:03:52Z"`, `"2020-10-22 06:03:52"`, "/generatedAt", "date-time"},
		{"timestamp without offset", `"2020-10-22T06:03:52Z"`, `"2020-10-22T06:03:52"`, "/generatedAt", "date-time"},
		{"malformed url", `"https://example.com/repos/foobar.git"`, `"example.com/foobar.git"`, "/packages/0/url", "uri"},
		{"unknown product type", `{"library": ["automatic"]}`, `{"framework": null}`, "/packages/0/versions/0/products/0/type", ""},
		{"packages not an array", `"packages": [`, `"packages": {"x": [`, "/packages", "expected array"},
		{"revision not an integer", `"formatVersion": "1.0",`, `"formatVersion": "1.0", "revision": "3",`, "/revision", "expected integer"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Contains(t, foobarCollection, test.old)
			raw := strings.Replace(foobarCollection, test.old, test.new, 1)
			if test.name == "packages not an array" {
				raw = strings.Replace(raw, "}]\n  }],", "}]\n  }]},", 1)
			}

			c, err := ValidateCollection([]byte(raw))
			assert.Nil(t, c)
			assertDecodeError(t, err, test.path, test.msg)
		})
	}
}

func TestValidateCollection_KeysAreCaseSensitive(t *testing.T) {
	// given: a document with keys that differ from the wire names only in case
	raw := strings.NewReplacer(
		`"title": "Test",`, `"title": "Test", "TITLE": "shadow", "DESCRIPTION": "sneaky", "Revision": 5, "Keywords": ["x"], "GeneratedBy": {"name": "x"},`,
		`"url": "https://example.com/repos/foobar.git",`, `"url": "https://example.com/repos/foobar.git", "Description": "sneaky", "ReadmeURL": "https://example.com/x",`,
		`{"name": "Foo"}`, `{"name": "Foo", "ModuleName": "Foo"}`,
		`"toolsVersion": "5.2"`, `"toolsVersion": "5.2", "PackageName": "shadow", "License": {"name": "MIT", "url": "https://example.com/l"}`,
	).Replace(foobarCollection)
	require.Contains(t, raw, `"TITLE"`)
	require.Contains(t, raw, `"ModuleName"`)

	// when: decoding it
	c, err := ValidateCollection([]byte(raw))

	// then: only the exact wire names are decoded
	require.NoError(t, err)
	assert.Equal(t, "Test", c.Title)
	assert.Nil(t, c.Description)
	assert.Nil(t, c.Revision)
	assert.Nil(t, c.Keywords)
	assert.Nil(t, c.GeneratedBy)
	p := c.Packages[0]
	assert.Nil(t, p.Description)
	assert.Nil(t, p.ReadmeURL)
	v := p.Versions[0]
	assert.Equal(t, "Foobar", v.PackageName)
	assert.Nil(t, v.License)
	assert.Nil(t, v.Targets[0].ModuleName)
}

func TestValidateCollection_NullOptionals(t *testing.T) {
	// given: a document with every optional key set to null
	raw := strings.NewReplacer(
		`"title": "Test",`, `"title": "Test", "description": null, "keywords": null, "revision": null, "generatedBy": null,`,
		`"url": "https://example.com/repos/foobar.git",`, `"url": "https://example.com/repos/foobar.git", "description": null, "keywords": null, "readmeURL": null,`,
		`{"name": "Foo"}`, `{"name": "Foo", "moduleName": null}`,
		`"toolsVersion": "5.2"`, `"toolsVersion": "5.2", "minimumPlatformVersions": null, "verifiedPlatforms": null, "verifiedSwiftVersions": null, "license": null`,
	).Replace(foobarCollection)

	// when: decoding it
	c, err := ValidateCollection([]byte(raw))

	// then: the optional values are absent
	require.NoError(t, err)
	assert.Nil(t, c.Description)
	assert.Nil(t, c.Keywords)
	assert.Nil(t, c.Revision)
	assert.Nil(t, c.GeneratedBy)
	p := c.Packages[0]
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Keywords)
	assert.Nil(t, p.ReadmeURL)
	v := p.Versions[0]
	assert.Nil(t, v.Targets[0].ModuleName)
	assert.Nil(t, v.MinimumPlatformVersions)
	assert.Nil(t, v.VerifiedPlatforms)
	assert.Nil(t, v.VerifiedSwiftVersions)
	assert.Nil(t, v.License)

	// and then: encoding it again omits the keys
	jsa := jsonassert.New(t)
	jsa.Assertf(string(encode(t, *c, "")), foobarCollection)
}

func TestValidateCollection_NullRequired(t *testing.T) {
	raw := strings.Replace(foobarCollection, `"packageName": "Foobar"`, `"packageName": null`, 1)

	c, err := ValidateCollection([]byte(raw))

	assert.Nil(t, c)
	assertDecodeError(t, err, "/packages/0/versions/0/packageName", "expected string")
}

func TestValidateCollection_LeapSecond(t *testing.T) {
	// given: a timestamp that is a valid date-time, but cannot be represented
	raw := strings.Replace(foobarCollection, `"2020-10-22T06:03:52Z"`, `"2020-12-31T23:59:60Z"`, 1)

	// when: decoding it
	c, err := ValidateCollection([]byte(raw))

	// then: the error names the timestamp
	assert.Nil(t, c)
	assertDecodeError(t, err, "/generatedAt", "second out of range")
}

func TestValidateCollection_TrailingData(t *testing.T) {
	c, err := ValidateCollection([]byte(foobarCollection + ` {}`))
	assert.Nil(t, c)
	assertDecodeError(t, err, "", "malformed JSON")
}

func TestValidateCollection_LargeRevision(t *testing.T) {
	raw := strings.Replace(foobarCollection, `"formatVersion": "1.0",`, `"formatVersion": "1.0", "revision": 9007199254740993,`, 1)

	c, err := ValidateCollection([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, 9007199254740993, *c.Revision)
}

func TestValidateCollection_MalformedJSON(t *testing.T) {
	c, err := ValidateCollection([]byte(`{"title": "Test",`))
	assert.Nil(t, c)
	assertDecodeError(t, err, "", "malformed JSON")

	_, err = ValidateCollection([]byte(`[]`))
	assertDecodeError(t, err, "", "expected object")
}

func TestValidateCollection_OtherFormatVersion(t *testing.T) {
	// given: a document in a format version that is not supported
	raw := strings.Replace(foobarCollection, `"formatVersion": "1.0"`, `"formatVersion": "2.0"`, 1)

	// when: decoding it as raw data
	c, err := ValidateCollection([]byte(raw))

	// then: it is decoded
	require.NoError(t, err)
	assert.Equal(t, model.FormatVersion("2.0"), c.FormatVersion)
	assert.False(t, c.FormatVersion.IsSupported())
	// but then: building a collection from it through the gated constructor fails
	assert.Panics(t, func() {
		model.NewCollection(c.Title, c.Packages, c.FormatVersion, model.WithGeneratedAt(c.GeneratedAt))
	})
	// and then: decoding it as a supported collection reports an error
	_, err = ValidateSupportedCollection([]byte(raw))
	assert.ErrorIs(t, err, model.ErrUnsupportedFormatVersion)
	assert.False(t, errors.Is(err, model.ErrInvalidCollection))
}

func TestValidateSupportedCollection_RejectsOtherShapes(t *testing.T) {
	// given: a document in another format version that does not match the 1.0 layout
	raw := []byte(`{"formatVersion": "2.0", "packages": {"a": {}}}`)

	// when: decoding it as a supported collection
	c, err := ValidateSupportedCollection(raw)

	// then: the format version is reported instead of the layout
	assert.Nil(t, c)
	assert.ErrorIs(t, err, model.ErrUnsupportedFormatVersion)
	assert.ErrorContains(t, err, "2.0")
}

func TestValidateSupportedCollection_MissingFormatVersion(t *testing.T) {
	raw := strings.Replace(foobarCollection, `"formatVersion": "1.0",`, "", 1)

	_, err := ValidateSupportedCollection([]byte(raw))

	assertDecodeError(t, err, "", "missing properties: 'formatVersion'")
}

func TestValidateCollection_TestData(t *testing.T) {
	_, raw, err := utils.ReadRequiredFile("../../../test/data/collections/sample.json")
	require.NoError(t, err)

	c, err := ValidateSupportedCollection(raw)
	require.NoError(t, err)
	assert.True(t, testutils.SampleCollection().Equal(*c))
}

func TestValidateCollection_Concurrent(t *testing.T) {
	raw := encode(t, testutils.SampleCollection(), "")
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ValidateCollection(raw)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestPeekFormatVersion(t *testing.T) {
	v, err := PeekFormatVersion([]byte(foobarCollection))
	assert.NoError(t, err)
	assert.Equal(t, model.FormatVersion1_0, v)

	v, err = PeekFormatVersion([]byte(`{"formatVersion": "2.0", "packages": "whatever"}`))
	assert.NoError(t, err)
	assert.Equal(t, model.FormatVersion("2.0"), v)

	_, err = PeekFormatVersion([]byte(`{"title": "Test"}`))
	assertDecodeError(t, err, "", "missing properties: 'formatVersion'")

	_, err = PeekFormatVersion([]byte(`{"formatVersion": 1}`))
	assertDecodeError(t, err, "/formatVersion", "")
}
