package server

import (
	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Edit is a partial server edit. Nil fields stay untouched. Numeric
// fields are clamped, not rejected: cores to [1, 8], RAM to the fixed
// power-of-two table, money and security to non-negative values.
type Edit struct {
	MaxRAM          *float64 `json:"max_ram,omitempty"`
	Cores           *int     `json:"cores,omitempty"`
	Security        *float64 `json:"security,omitempty"`
	MinSecurity     *float64 `json:"min_security,omitempty"`
	Money           *float64 `json:"money,omitempty"`
	MaxMoney        *float64 `json:"max_money,omitempty"`
	RequiredHacking *int     `json:"required_hacking,omitempty"`
	Admin           *bool    `json:"admin,omitempty"`
	Backdoor        *bool    `json:"backdoor,omitempty"`
	// Purchased flips only the per-record flag. The player's purchased
	// list is the authority; syncing list→flag happens in
	// ApplyPurchasedList, never the other way around.
	Purchased *bool `json:"purchased,omitempty"`
}

// Apply writes scalar fields onto the server's record. Both legacy
// record shapes (flat, or wrapped in a nested payload field) are
// handled by the record normalization, so the write always lands in
// the live record. Unknown hostnames are ignored: this engine edits
// servers, it does not create them.
func Apply(working *savefile.Container, hostname string, edit Edit) {
	section := working.Servers()
	rec := savefile.Record(section[hostname])
	if rec == nil {
		return
	}

	if edit.MaxRAM != nil {
		rec["maxRam"] = gamedata.ClampRAM(*edit.MaxRAM)
	}
	if edit.Cores != nil {
		rec["cpuCores"] = float64(gamedata.ClampCores(*edit.Cores))
	}
	if edit.Security != nil {
		rec["hackDifficulty"] = clampNonNegative(*edit.Security)
	}
	if edit.MinSecurity != nil {
		rec["minDifficulty"] = clampNonNegative(*edit.MinSecurity)
	}
	if edit.Money != nil {
		rec["moneyAvailable"] = clampNonNegative(*edit.Money)
	}
	if edit.MaxMoney != nil {
		rec["moneyMax"] = clampNonNegative(*edit.MaxMoney)
	}
	if edit.RequiredHacking != nil {
		skill := *edit.RequiredHacking
		if skill < 0 {
			skill = 0
		}
		rec["requiredHackingSkill"] = float64(skill)
	}
	if edit.Admin != nil {
		rec["hasAdminRights"] = *edit.Admin
	}
	if edit.Backdoor != nil {
		rec["backdoorInstalled"] = *edit.Backdoor
	}
	if edit.Purchased != nil {
		rec["purchasedByPlayer"] = *edit.Purchased
	}
}

// ApplyPurchasedList replaces the player's purchased-hostname list and
// synchronizes the per-record purchased flag for every hostname that
// entered or left the list. The sync is one-directional: list→flag.
func ApplyPurchasedList(working *savefile.Container, hostnames []string) {
	player := working.Ensure(savefile.SectionPlayer)
	previous := utils.StringSlice(player, "purchasedServers")
	utils.SetStringSlice(player, "purchasedServers", hostnames)

	section := working.Servers()
	setFlag := func(hostname string, purchased bool) {
		if rec := savefile.Record(section[hostname]); rec != nil {
			rec["purchasedByPlayer"] = purchased
		}
	}
	for _, hostname := range hostnames {
		if !utils.Contains(previous, hostname) {
			setFlag(hostname, true)
		}
	}
	for _, hostname := range previous {
		if !utils.Contains(hostnames, hostname) {
			setFlag(hostname, false)
		}
	}
}

// Revert restores one server record to its baseline values by
// re-running the forward update. Records that did not exist at load
// time are removed.
func Revert(working, baseline *savefile.Container, hostname string) {
	base, ok := Find(baseline, hostname)
	if !ok {
		if section := working.Servers(); section != nil {
			delete(section, hostname)
		}
		return
	}
	Apply(working, hostname, Edit{
		MaxRAM:          &base.MaxRAM,
		Cores:           &base.Cores,
		Security:        &base.Security,
		MinSecurity:     &base.MinSecurity,
		Money:           &base.Money,
		MaxMoney:        &base.MaxMoney,
		RequiredHacking: &base.RequiredHacking,
		Admin:           &base.Admin,
		Backdoor:        &base.Backdoor,
		Purchased:       &base.Purchased,
	})
}

// RevertPurchasedList restores the purchased list to baseline,
// re-running the list→flag sync for anything that changes.
func RevertPurchasedList(working, baseline *savefile.Container) {
	ApplyPurchasedList(working, PurchasedList(baseline))
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
