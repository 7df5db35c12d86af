package faction

import (
	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Edit is a partial faction edit. Nil fields stay untouched.
type Edit struct {
	Reputation *float64 `json:"reputation,omitempty"`
	Favor      *int     `json:"favor,omitempty"`
	Banned     *bool    `json:"banned,omitempty"`
	Status     *Status  `json:"status,omitempty"`
}

// Apply writes an edit into the working container and propagates it to
// every redundant location: scalar fields land in the factions section
// entry (created when absent), status changes rewrite the player-level
// membership and invitation lists. Re-inserted names prefer the
// position they held in the baseline list, so a toggle that nets out
// unchanged is indistinguishable from no edit.
func Apply(working, baseline *savefile.Container, name string, edit Edit) {
	section := working.Ensure(savefile.SectionFactions)
	rec := savefile.Record(section[name])
	if rec == nil {
		rec = map[string]any{}
		section[name] = rec
	}

	if edit.Reputation != nil {
		rec["playerReputation"] = *edit.Reputation
	}
	if edit.Favor != nil {
		rec["favor"] = float64(*edit.Favor)
	}
	if edit.Banned != nil {
		rec["isBanned"] = *edit.Banned
	}
	if edit.Status != nil {
		applyStatus(working, baseline, name, *edit.Status, rec)
	}
}

// Revert restores a single faction to its baseline state by re-running
// the forward update with the baseline projection's values, which
// re-triggers the same list propagation. A faction that did not exist
// at load time is removed entirely.
func Revert(working, baseline *savefile.Container, name string) {
	base, ok := Find(baseline, name)
	if !ok {
		remove(working, baseline, name)
		return
	}
	edit := Edit{
		Reputation: &base.Reputation,
		Favor:      &base.Favor,
		Banned:     &base.Banned,
		Status:     &base.Status,
	}
	Apply(working, baseline, name, edit)
}

func remove(working, baseline *savefile.Container, name string) {
	if section := working.Factions(); section != nil {
		delete(section, name)
	}
	none := StatusNone
	if player := working.Player(); player != nil {
		applyStatus(working, baseline, name, none, nil)
	}
}

// applyStatus rewrites the player membership lists so that
// membership ⇔ joined and invitation ⇔ invited-and-not-joined, then
// mirrors the state into legacy per-record booleans when those fields
// already exist.
func applyStatus(working, baseline *savefile.Container, name string, status Status, rec map[string]any) {
	player := working.Ensure(savefile.SectionPlayer)
	basePlayer := baseline.Player()

	members := utils.StringSlice(player, "factions")
	invites := utils.StringSlice(player, "factionInvitations")

	members = setPresence(members, utils.StringSlice(basePlayer, "factions"), name, status == StatusJoined)
	invites = setPresence(invites, utils.StringSlice(basePlayer, "factionInvitations"), name, status == StatusInvited)

	utils.SetStringSlice(player, "factions", members)
	utils.SetStringSlice(player, "factionInvitations", invites)

	if rec != nil {
		if _, ok := rec["isMember"]; ok {
			rec["isMember"] = status == StatusJoined
		}
		if _, ok := rec["alreadyInvited"]; ok {
			rec["alreadyInvited"] = status == StatusInvited
		}
	}
}

// setPresence inserts or removes name. Insertion prefers the position
// the name held in the baseline list (stable reinsertion), falling
// back to append.
func setPresence(list, baselineList []string, name string, present bool) []string {
	has := utils.Contains(list, name)
	switch {
	case present && !has:
		return utils.InsertAt(list, utils.IndexOf(baselineList, name), name)
	case !present && has:
		return utils.Remove(list, name)
	default:
		return list
	}
}
