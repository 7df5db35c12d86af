package hacknet

import (
	"save-editor/core/savefile"
	"save-editor/core/utils"

	"github.com/brunoga/deep"
)

// NodeEdit is a partial node edit. Nil fields stay untouched.
type NodeEdit struct {
	Level *int     `json:"level,omitempty"`
	RAM   *float64 `json:"ram,omitempty"`
	Cores *int     `json:"cores,omitempty"`
}

// ApplyNode writes an edit into one node. A node stored as a bare
// identifier string is materialized into a structured record first,
// since a string cannot carry the edited fields. Unknown names are
// ignored; the engine edits nodes, it does not create them.
func ApplyNode(working *savefile.Container, name string, edit NodeEdit) {
	player := working.Player()
	nodes := utils.Slice(player, "hacknetNodes")
	for i, entry := range nodes {
		if entryName(entry) != name {
			continue
		}
		rec := savefile.Record(entry)
		if rec == nil {
			rec = map[string]any{
				"name":  name,
				"level": float64(defaultLevel),
				"ram":   float64(defaultRAM),
				"cores": float64(defaultCores),
			}
			nodes[i] = rec
		}
		if edit.Level != nil {
			rec["level"] = float64(clampMin(*edit.Level, 1))
		}
		if edit.RAM != nil {
			ram := *edit.RAM
			if ram < 1 {
				ram = 1
			}
			rec["ram"] = ram
		}
		if edit.Cores != nil {
			rec["cores"] = float64(clampMin(*edit.Cores, 1))
		}
		return
	}
}

// RevertNode restores one node to its baseline wire form, bare string
// included, keeping its position in the list. A node that did not exist
// at load time is dropped.
func RevertNode(working, baseline *savefile.Container, name string) {
	player := working.Player()
	nodes := utils.Slice(player, "hacknetNodes")

	base, found := baselineEntry(baseline, name)
	out := make([]any, 0, len(nodes))
	restored := false
	for _, entry := range nodes {
		if entryName(entry) == name {
			if found && !restored {
				out = append(out, deep.MustCopy(base))
				restored = true
			}
			continue
		}
		out = append(out, entry)
	}
	if found && !restored {
		out = append(out, deep.MustCopy(base))
	}
	if player != nil {
		utils.SetSlice(player, "hacknetNodes", out)
	}
}

// ApplyHashes sets the stored hash count, clamped to [0, capacity].
// The clamped value is returned.
func ApplyHashes(working *savefile.Container, hashes float64) float64 {
	player := working.Ensure(savefile.SectionPlayer)
	manager := utils.EnsureObj(player, "hashManager")
	capacity := utils.ToFloat(manager["capacity"])
	if hashes < 0 {
		hashes = 0
	}
	if hashes > capacity {
		hashes = capacity
	}
	manager["hashes"] = hashes
	return hashes
}

// ApplyUpgrade sets one hash-upgrade count, clamped to zero or more.
func ApplyUpgrade(working *savefile.Container, name string, count int) int {
	player := working.Ensure(savefile.SectionPlayer)
	manager := utils.EnsureObj(player, "hashManager")
	upgrades := utils.EnsureObj(manager, "upgrades")
	count = clampMin(count, 0)
	upgrades[name] = float64(count)
	return count
}

// RevertLedger restores the whole hash manager to its baseline state.
func RevertLedger(working, baseline *savefile.Container) {
	player := working.Ensure(savefile.SectionPlayer)
	base := utils.Obj(baseline.Player(), "hashManager")
	if base == nil {
		delete(player, "hashManager")
		return
	}
	player["hashManager"] = deep.MustCopy(base)
}

func baselineEntry(baseline *savefile.Container, name string) (any, bool) {
	for _, entry := range utils.Slice(baseline.Player(), "hacknetNodes") {
		if entryName(entry) == name {
			return entry, true
		}
	}
	return nil, false
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
