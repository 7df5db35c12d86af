package company

import (
	"sort"

	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Company is the normalized entity view over the sparse companies
// section. Companies absent from the section project as zero records.
type Company struct {
	Name       string  `json:"name"`
	Reputation float64 `json:"reputation"`
	Favor      int     `json:"favor"`
}

// Project computes the company view: the full static catalog merged
// with any unrecognized names found in the data, so newly-appearing or
// removed-from-catalog companies still surface. Sorted descending by
// reputation, ties kept in collection order.
func Project(c *savefile.Container) []Company {
	section := c.Companies()

	seen := map[string]struct{}{}
	var names []string
	for _, name := range gamedata.CompanyNames {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	unknown := make([]string, 0)
	for name := range section {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	names = append(names, unknown...)

	out := make([]Company, 0, len(names))
	for _, name := range names {
		out = append(out, project(section, name))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Reputation > out[j].Reputation
	})
	return out
}

// Find projects a single company by name. Catalog companies always
// resolve; unknown names resolve only when present in the data.
func Find(c *savefile.Container, name string) (Company, bool) {
	section := c.Companies()
	_, inData := section[name]
	if !inData && !gamedata.KnownCompany(name) {
		return Company{}, false
	}
	return project(section, name), true
}

// Exists reports whether the company has a record in the container's
// companies section. The zero-suppression policy keys on baseline
// existence, not on current values.
func Exists(c *savefile.Container, name string) bool {
	_, ok := c.Companies()[name]
	return ok
}

func project(section map[string]any, name string) Company {
	out := Company{Name: name}
	if rec := savefile.Record(section[name]); rec != nil {
		out.Reputation = utils.ToFloat(rec["playerReputation"])
		out.Favor = utils.ToInt(rec["favor"])
	}
	return out
}
