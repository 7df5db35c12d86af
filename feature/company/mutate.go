package company

import (
	"save-editor/core/savefile"
)

// Edit is a partial company edit. Nil fields stay untouched.
type Edit struct {
	Reputation *float64 `json:"reputation,omitempty"`
	Favor      *int     `json:"favor,omitempty"`
}

// Apply writes an edit into the working container. A company whose
// reputation and favor both end at zero is deleted from the section
// unless it already existed in the baseline: the export must never
// materialize companies the player never touched, but a company that
// pre-existed at zero keeps its explicit record.
func Apply(working, baseline *savefile.Container, name string, edit Edit) {
	current, _ := Find(working, name)
	if edit.Reputation != nil {
		current.Reputation = *edit.Reputation
	}
	if edit.Favor != nil {
		current.Favor = *edit.Favor
	}

	if current.Reputation == 0 && current.Favor == 0 && !Exists(baseline, name) {
		if section := working.Companies(); section != nil {
			delete(section, name)
		}
		return
	}

	section := working.Ensure(savefile.SectionCompanies)
	rec := savefile.Record(section[name])
	if rec == nil {
		rec = map[string]any{}
		section[name] = rec
	}
	rec["playerReputation"] = current.Reputation
	rec["favor"] = float64(current.Favor)
}

// Revert restores one company to its baseline state: baseline records
// are rewritten with their original values, records absent at load
// time are deleted.
func Revert(working, baseline *savefile.Container, name string) {
	if !Exists(baseline, name) {
		if section := working.Companies(); section != nil {
			delete(section, name)
		}
		return
	}
	base, _ := Find(baseline, name)
	Apply(working, baseline, name, Edit{Reputation: &base.Reputation, Favor: &base.Favor})
}
