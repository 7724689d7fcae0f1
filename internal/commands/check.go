package commands

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/wot-oss/pkgcoll/internal/model"
)

// CheckCollection reports consistency problems which decoding does not detect:
// product target names that do not resolve to a target of the same version, duplicate package URLs,
// duplicate versions of a package and version strings that are not semantic versions.
// Returns one CheckOK result per package without findings.
func CheckCollection(c model.Collection) []model.CheckResult {
	var results []model.CheckResult
	seenURLs := make(map[model.URL]int)
	for i, p := range c.Packages {
		pkgRes := fmt.Sprintf("/packages/%d", i)
		var found []model.CheckResult
		if first, ok := seenURLs[p.URL]; ok {
			found = append(found, model.CheckResult{Typ: model.CheckErr, ResourceName: pkgRes,
				Message: fmt.Sprintf("duplicate package URL %s, first seen at /packages/%d", p.URL, first)})
		} else {
			seenURLs[p.URL] = i
		}
		seenVersions := make(map[string]int)
		for j, v := range p.Versions {
			verRes := fmt.Sprintf("%s/versions/%d", pkgRes, j)
			if first, ok := seenVersions[v.Version]; ok {
				found = append(found, model.CheckResult{Typ: model.CheckErr, ResourceName: verRes,
					Message: fmt.Sprintf("duplicate version %s, first seen at %s/versions/%d", v.Version, pkgRes, first)})
			} else {
				seenVersions[v.Version] = j
			}
			if _, err := semver.StrictNewVersion(v.Version); err != nil {
				found = append(found, model.CheckResult{Typ: model.CheckWarn, ResourceName: verRes,
					Message: fmt.Sprintf("version %q is not a semantic version", v.Version)})
			}
			found = append(found, checkProductTargets(v, verRes)...)
		}
		if len(found) == 0 {
			found = append(found, model.CheckResult{Typ: model.CheckOK, ResourceName: pkgRes, Message: "OK"})
		}
		results = append(results, found...)
	}
	return results
}

func checkProductTargets(v model.Version, verRes string) []model.CheckResult {
	var results []model.CheckResult
	for k, prod := range v.Products {
		for l, name := range prod.Targets {
			if _, ok := v.FindTarget(name); !ok {
				results = append(results, model.CheckResult{Typ: model.CheckErr,
					ResourceName: fmt.Sprintf("%s/products/%d/targets/%d", verRes, k, l),
					Message:      fmt.Sprintf("product %s refers to unknown target %s", prod.Name, name)})
			}
		}
	}
	return results
}
