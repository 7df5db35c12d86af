package augment

import (
	"fmt"
	"sort"

	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Status is an augmentation's progression state.
type Status string

const (
	StatusNone      Status = "none"
	StatusQueued    Status = "queued"
	StatusInstalled Status = "installed"
)

// ParseStatus validates a wire status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNone, StatusQueued, StatusInstalled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown augmentation status %q", s)
}

// rank orders statuses by progression. The prerequisite cascade clamps
// dependents with it.
func rank(s Status) int {
	switch s {
	case StatusInstalled:
		return 2
	case StatusQueued:
		return 1
	default:
		return 0
	}
}

// Augmentation is one projected ordinary augmentation.
type Augmentation struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Level  int    `json:"level"`
}

// NeuroFlux is the projected level pair for the leveled augmentation.
// Installed is the single installed level; Queued counts upward from
// it, one queued record per level.
type NeuroFlux struct {
	Installed int `json:"installed"`
	Queued    int `json:"queued"`
}

// Project computes the ordinary augmentation view. Every catalog name
// is seeded at none, then the queued array overlays, then the installed
// array. A name occurring in both arrays is an inconsistency older
// saves carry; installed wins rather than failing the load. The leveled
// augmentation is excluded here and projected by NeuroFluxLevels.
func Project(c *savefile.Container) []Augmentation {
	byName := map[string]Augmentation{}
	for _, name := range gamedata.AugmentationNames() {
		byName[name] = Augmentation{Name: name, Status: StatusNone}
	}
	overlay := func(key string, status Status) {
		for _, raw := range utils.Slice(c.Player(), key) {
			rec := savefile.Record(raw)
			if rec == nil {
				continue
			}
			name := utils.ToString(rec["name"])
			if name == "" || name == gamedata.NeuroFluxGovernor {
				continue
			}
			byName[name] = Augmentation{Name: name, Status: status, Level: utils.ToInt(rec["level"])}
		}
	}
	overlay("queuedAugmentations", StatusQueued)
	overlay("augmentations", StatusInstalled)

	out := make([]Augmentation, 0, len(byName))
	for _, aug := range byName {
		out = append(out, aug)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Find returns the projected entry for one ordinary augmentation.
func Find(c *savefile.Container, name string) (Augmentation, bool) {
	for _, aug := range Project(c) {
		if aug.Name == name {
			return aug, true
		}
	}
	return Augmentation{}, false
}

// NeuroFluxLevels projects the leveled augmentation's level pair from
// record multiplicity: the installed level is the highest installed
// record, and each queued record raises the queued level by one.
func NeuroFluxLevels(c *savefile.Container) NeuroFlux {
	player := c.Player()
	installed := 0
	for _, raw := range utils.Slice(player, "augmentations") {
		rec := savefile.Record(raw)
		if rec == nil || utils.ToString(rec["name"]) != gamedata.NeuroFluxGovernor {
			continue
		}
		if lvl := utils.ToInt(rec["level"]); lvl > installed {
			installed = lvl
		}
	}
	queued := installed
	for _, raw := range utils.Slice(player, "queuedAugmentations") {
		if recordName(raw) == gamedata.NeuroFluxGovernor {
			queued++
		}
	}
	return NeuroFlux{Installed: installed, Queued: queued}
}

// statusOf reads the effective status straight off the player arrays,
// installed winning over queued.
func statusOf(c *savefile.Container, name string) Status {
	player := c.Player()
	for _, raw := range utils.Slice(player, "augmentations") {
		if recordName(raw) == name {
			return StatusInstalled
		}
	}
	for _, raw := range utils.Slice(player, "queuedAugmentations") {
		if recordName(raw) == name {
			return StatusQueued
		}
	}
	return StatusNone
}

func recordName(raw any) string {
	return savefile.RecordString(raw, "name")
}
