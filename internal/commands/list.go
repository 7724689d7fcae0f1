package commands

import (
	"github.com/Masterminds/semver/v3"
	"github.com/wot-oss/pkgcoll/internal/model"
)

type PackageSummary struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Latest      string `json:"latest,omitempty"`
	Versions    int    `json:"versions"`
	Description string `json:"description,omitempty"`
}

// ListPackages summarizes the packages of c in collection order. Latest is the highest version which parses as a
// semantic version. Name is the package name of that version, or of the first version if none parses.
func ListPackages(c model.Collection) []PackageSummary {
	res := make([]PackageSummary, 0, len(c.Packages))
	for _, p := range c.Packages {
		s := PackageSummary{
			URL:      p.URL.String(),
			Versions: len(p.Versions),
		}
		if p.Description != nil {
			s.Description = *p.Description
		}
		if len(p.Versions) > 0 {
			s.Name = p.Versions[0].PackageName
		}
		var latest *semver.Version
		for _, v := range p.Versions {
			sv, err := semver.NewVersion(v.Version)
			if err != nil {
				continue
			}
			if latest == nil || sv.GreaterThan(latest) {
				latest = sv
				s.Latest = v.Version
				s.Name = v.PackageName
			}
		}
		res = append(res, s)
	}
	return res
}
