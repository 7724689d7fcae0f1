package model

// Package describes a single package in a collection.
type Package struct {
	// URL of the package's source repository. Currently only Git repository URLs are meaningful.
	URL         URL      `json:"url"`
	Description *string  `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitzero"`
	// Versions holds the most recent and/or relevant releases of the package, in order.
	Versions  []Version `json:"versions"`
	ReadmeURL *URL      `json:"readmeURL,omitempty"`
}

func NewPackage(url URL, versions []Version) Package {
	if versions == nil {
		versions = []Version{}
	}
	return Package{URL: url, Versions: versions}
}

// Version is the metadata of one released version of a package.
// Version and ToolsVersion are opaque strings and are not checked to be semantic versions.
type Version struct {
	Version string `json:"version"`
	// PackageName is the display name of the package. It is not a module name.
	PackageName             string            `json:"packageName"`
	Targets                 []Target          `json:"targets"`
	Products                []Product         `json:"products"`
	ToolsVersion            string            `json:"toolsVersion"`
	MinimumPlatformVersions []PlatformVersion `json:"minimumPlatformVersions,omitzero"`
	VerifiedPlatforms       []Platform        `json:"verifiedPlatforms,omitzero"`
	VerifiedSwiftVersions   []string          `json:"verifiedSwiftVersions,omitzero"`
	License                 *License          `json:"license,omitempty"`
}

func NewVersion(version, packageName string, targets []Target, products []Product, toolsVersion string) Version {
	if targets == nil {
		targets = []Target{}
	}
	if products == nil {
		products = []Product{}
	}
	return Version{
		Version:      version,
		PackageName:  packageName,
		Targets:      targets,
		Products:     products,
		ToolsVersion: toolsVersion,
	}
}

// FindTarget returns the target with the given name, if the version has one.
func (v Version) FindTarget(name string) (Target, bool) {
	for _, t := range v.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

type Target struct {
	Name string `json:"name"`
	// ModuleName is nil when the target cannot be imported as a module.
	ModuleName *string `json:"moduleName,omitempty"`
}

func NewTarget(name string) Target {
	return Target{Name: name}
}

func NewModuleTarget(name, moduleName string) Target {
	return Target{Name: name, ModuleName: &moduleName}
}

type Product struct {
	Name string      `json:"name"`
	Type ProductType `json:"type"`
	// Targets holds names of targets of the same Version. The names are not resolved or checked here.
	Targets []string `json:"targets"`
}

func NewProduct(name string, typ ProductType, targets ...string) Product {
	return Product{Name: name, Type: typ, Targets: append(make([]string, 0, len(targets)), targets...)}
}

type PlatformVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewPlatformVersion(name, version string) PlatformVersion {
	return PlatformVersion{Name: name, Version: version}
}

type Platform struct {
	Name string `json:"name"`
}

func NewPlatform(name string) Platform {
	return Platform{Name: name}
}

type License struct {
	// Name is usually an SPDX identifier, e.g. Apache-2.0
	Name string `json:"name"`
	URL  URL    `json:"url"`
}

func NewLicense(name string, url URL) License {
	return License{Name: name, URL: url}
}
