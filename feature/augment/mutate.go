package augment

import (
	"errors"

	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// ErrConfirmationRequired is returned when a plan carries cascade
// changes and the caller has not confirmed them.
var ErrConfirmationRequired = errors.New("prerequisite cascade requires confirmation")

// Change is one status transition inside a plan.
type Change struct {
	Name string `json:"name"`
	From Status `json:"from"`
	To   Status `json:"to"`
}

// Plan is a computed status change plus the cascade it forces on
// dependents. Computing a plan mutates nothing; Apply commits it as
// one batch.
type Plan struct {
	Target  Change   `json:"target"`
	Cascade []Change `json:"cascade,omitempty"`
}

// HasCascade reports whether the plan touches augmentations beyond its
// target.
func (p Plan) HasCascade() bool { return len(p.Cascade) > 0 }

// Options control plan application.
type Options struct {
	Confirmed bool `json:"confirmed"`
}

// PlanStatusChange computes the cascade a status change forces.
// Dependents whose current status outranks the target's new status are
// clamped down to it, and each clamp walks on through its own
// dependents.
func PlanStatusChange(working *savefile.Container, name string, to Status) Plan {
	plan := Plan{Target: Change{Name: name, From: statusOf(working, name), To: to}}

	seen := map[string]bool{name: true}
	queue := []string{name}
	for len(queue) > 0 {
		prereq := queue[0]
		queue = queue[1:]
		for _, dep := range gamedata.Dependents(prereq) {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			cur := statusOf(working, dep)
			if rank(cur) <= rank(to) {
				continue
			}
			plan.Cascade = append(plan.Cascade, Change{Name: dep, From: cur, To: to})
			queue = append(queue, dep)
		}
	}
	return plan
}

// PlanRevert plans a restore of one ordinary augmentation to its
// baseline status. Reverting runs through the same cascade check as a
// forward edit, since restoring a lower status can break dependents
// just the same.
func PlanRevert(working, baseline *savefile.Container, name string) Plan {
	return PlanStatusChange(working, name, statusOf(baseline, name))
}

// Apply commits a plan. A plan carrying a cascade is refused until
// confirmed, leaving the working container untouched.
func Apply(working *savefile.Container, plan Plan, opts Options) error {
	if plan.HasCascade() && !opts.Confirmed {
		return ErrConfirmationRequired
	}
	setStatus(working, plan.Target.Name, plan.Target.To)
	for _, change := range plan.Cascade {
		setStatus(working, change.Name, change.To)
	}
	return nil
}

// UpdateNeuroFlux rebuilds both arrays for the leveled augmentation.
// The installed array keeps at most one record at installedLevel (none
// when zero); the queued array gets one record per level from
// installedLevel+1 through queuedLevel. Other records keep their
// relative order, and the rebuilt records splice in at the position the
// first prior record held.
func UpdateNeuroFlux(working *savefile.Container, installedLevel, queuedLevel int) NeuroFlux {
	if installedLevel < 0 {
		installedLevel = 0
	}
	if queuedLevel < installedLevel {
		queuedLevel = installedLevel
	}

	player := working.Ensure(savefile.SectionPlayer)

	var installed []any
	if installedLevel > 0 {
		installed = append(installed, neuroFluxRecord(installedLevel))
	}
	spliceNeuroFlux(player, "augmentations", installed)

	queued := make([]any, 0, queuedLevel-installedLevel)
	for level := installedLevel + 1; level <= queuedLevel; level++ {
		queued = append(queued, neuroFluxRecord(level))
	}
	spliceNeuroFlux(player, "queuedAugmentations", queued)

	return NeuroFlux{Installed: installedLevel, Queued: queuedLevel}
}

// RevertNeuroFlux restores the leveled augmentation to its baseline
// level pair.
func RevertNeuroFlux(working, baseline *savefile.Container) NeuroFlux {
	base := NeuroFluxLevels(baseline)
	return UpdateNeuroFlux(working, base.Installed, base.Queued)
}

// setStatus removes every record for name from both arrays, then
// re-inserts a single level-1 record into the array matching the new
// status. None re-inserts nothing.
func setStatus(working *savefile.Container, name string, status Status) {
	player := working.Ensure(savefile.SectionPlayer)
	installed := removeRecords(utils.EnsureSlice(player, "augmentations"), name)
	queued := removeRecords(utils.EnsureSlice(player, "queuedAugmentations"), name)

	record := map[string]any{"name": name, "level": float64(1)}
	switch status {
	case StatusInstalled:
		installed = append(installed, record)
	case StatusQueued:
		queued = append(queued, record)
	}
	utils.SetSlice(player, "augmentations", installed)
	utils.SetSlice(player, "queuedAugmentations", queued)
}

func removeRecords(records []any, name string) []any {
	out := make([]any, 0, len(records))
	for _, raw := range records {
		if recordName(raw) == name {
			continue
		}
		out = append(out, raw)
	}
	return out
}

func neuroFluxRecord(level int) map[string]any {
	return map[string]any{"name": gamedata.NeuroFluxGovernor, "level": float64(level)}
}

// spliceNeuroFlux replaces every leveled-augmentation record under key
// with replacements, inserted where the first such record previously
// sat, or appended when none existed.
func spliceNeuroFlux(player map[string]any, key string, replacements []any) {
	records := utils.EnsureSlice(player, key)
	kept := make([]any, 0, len(records))
	at := -1
	for _, raw := range records {
		if recordName(raw) == gamedata.NeuroFluxGovernor {
			if at < 0 {
				at = len(kept)
			}
			continue
		}
		kept = append(kept, raw)
	}
	if at < 0 {
		at = len(kept)
	}
	out := make([]any, 0, len(kept)+len(replacements))
	out = append(out, kept[:at]...)
	out = append(out, replacements...)
	out = append(out, kept[at:]...)
	utils.SetSlice(player, key, out)
}
