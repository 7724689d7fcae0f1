package testutils

import (
	"time"

	"github.com/wot-oss/pkgcoll/internal/model"
)

var SampleGeneratedAt = time.Date(2020, 10, 22, 6, 3, 52, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// FoobarPackage returns a package with every optional field set.
func FoobarPackage() model.Package {
	v := model.NewVersion("1.3.2", "Foobar",
		[]model.Target{model.NewModuleTarget("Foo", "Foo")},
		[]model.Product{model.NewProduct("Bar", model.Library(model.LibraryAutomatic), "Foo")},
		"5.2")
	v.MinimumPlatformVersions = []model.PlatformVersion{model.NewPlatformVersion("macOS", "10.15")}
	v.VerifiedPlatforms = []model.Platform{model.NewPlatform("macOS")}
	v.VerifiedSwiftVersions = []string{"5.2"}
	v.License = ptr(model.NewLicense("Apache-2.0", model.MustParseURL("https://example.com/repos/foobar/LICENSE")))

	p := model.NewPackage(model.MustParseURL("https://example.com/repos/foobar.git"), []model.Version{v})
	p.Description = ptr("Package Foobar")
	p.Keywords = []string{"test package"}
	p.ReadmeURL = ptr(model.MustParseURL("https://example.com/repos/foobar/README"))
	return p
}

// MinimalPackage returns a package with only the required fields set.
func MinimalPackage(url, version string) model.Package {
	v := model.NewVersion(version, "Minimal",
		[]model.Target{model.NewTarget("Min")},
		[]model.Product{model.NewProduct("min", model.Executable, "Min")},
		"5.9")
	return model.NewPackage(model.MustParseURL(url), []model.Version{v})
}

// SampleCollection returns a collection with every optional field set.
func SampleCollection() model.Collection {
	return model.NewCollection("Test Package Collection",
		[]model.Package{FoobarPackage(), MinimalPackage("https://example.com/repos/minimal.git", "0.1.0")},
		model.FormatVersion1_0,
		model.WithDescription("A test package collection"),
		model.WithKeywords("swift packages"),
		model.WithRevision(3),
		model.WithGeneratedAt(SampleGeneratedAt),
		model.WithGeneratedBy(model.NewAuthor("Jane Doe")),
	)
}
