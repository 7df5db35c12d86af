package faction

import (
	"sort"

	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Status is the membership state of a faction.
type Status string

const (
	StatusNone    Status = "none"
	StatusInvited Status = "invited"
	StatusJoined  Status = "joined"
)

// Faction is the normalized entity view. Its backing storage is split:
// reputation/favor/banned live in the factions section keyed by name;
// membership derives from the player-level string lists.
type Faction struct {
	Name       string  `json:"name"`
	Reputation float64 `json:"reputation"`
	Favor      int     `json:"favor"`
	Banned     bool    `json:"banned"`
	Status     Status  `json:"status"`
}

// Project computes the faction view over a container. The domain is
// the union of the factions section and both player lists; entries
// sort descending by reputation with ties kept in collection order.
//
// The player-level lists are the source of truth for membership in the
// current schema generation: legacy isMember/alreadyInvited booleans
// inside a faction record are ignored when they disagree.
func Project(c *savefile.Container) []Faction {
	player := c.Player()
	members := utils.StringSlice(player, "factions")
	invites := utils.StringSlice(player, "factionInvitations")
	section := c.Factions()

	seen := map[string]struct{}{}
	var names []string
	collect := func(name string) {
		if name == "" {
			// Defensive skip: a record without a name cannot be
			// projected, the rest of the document still loads.
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range members {
		collect(name)
	}
	for _, name := range invites {
		collect(name)
	}
	sectionNames := make([]string, 0, len(section))
	for name := range section {
		sectionNames = append(sectionNames, name)
	}
	sort.Strings(sectionNames)
	for _, name := range sectionNames {
		collect(name)
	}

	out := make([]Faction, 0, len(names))
	for _, name := range names {
		out = append(out, project(section, members, invites, name))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Reputation > out[j].Reputation
	})
	return out
}

// Find projects a single faction by name.
func Find(c *savefile.Container, name string) (Faction, bool) {
	player := c.Player()
	members := utils.StringSlice(player, "factions")
	invites := utils.StringSlice(player, "factionInvitations")
	section := c.Factions()

	if _, ok := section[name]; !ok &&
		!utils.Contains(members, name) && !utils.Contains(invites, name) {
		return Faction{}, false
	}
	return project(section, members, invites, name), true
}

func project(section map[string]any, members, invites []string, name string) Faction {
	f := Faction{Name: name, Status: StatusNone}

	if rec := savefile.Record(section[name]); rec != nil {
		f.Reputation = utils.ToFloat(rec["playerReputation"])
		f.Favor = utils.ToInt(rec["favor"])
		f.Banned = utils.ToBool(rec["isBanned"])
	}

	if utils.Contains(members, name) {
		f.Status = StatusJoined
	} else if utils.Contains(invites, name) {
		f.Status = StatusInvited
	}
	return f
}
