package server

import (
	"sort"

	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Server is the normalized entity view over one all-servers record.
type Server struct {
	Hostname        string  `json:"hostname"`
	MaxRAM          float64 `json:"max_ram"`
	Cores           int     `json:"cores"`
	Security        float64 `json:"security"`
	MinSecurity     float64 `json:"min_security"`
	Money           float64 `json:"money"`
	MaxMoney        float64 `json:"max_money"`
	RequiredHacking int     `json:"required_hacking"`
	Admin           bool    `json:"admin"`
	Backdoor        bool    `json:"backdoor"`
	Purchased       bool    `json:"purchased"`
}

// Project computes the server view with fixed precedence: the player's
// home server first, then purchased servers, then everything else
// alphabetically.
func Project(c *savefile.Container) []Server {
	section := c.Servers()

	out := make([]Server, 0, len(section))
	for hostname, raw := range section {
		if hostname == "" || savefile.Record(raw) == nil {
			// Defensive skip; the rest of the document stays editable.
			continue
		}
		out = append(out, project(section, hostname))
	}

	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b Server) bool {
	rank := func(s Server) int {
		switch {
		case s.Hostname == gamedata.HomeHostname:
			return 0
		case s.Purchased:
			return 1
		default:
			return 2
		}
	}
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	return a.Hostname < b.Hostname
}

// Find projects a single server by hostname.
func Find(c *savefile.Container, hostname string) (Server, bool) {
	section := c.Servers()
	if savefile.Record(section[hostname]) == nil {
		return Server{}, false
	}
	return project(section, hostname), true
}

// PurchasedList reads the player's purchased-hostname list, the
// authoritative side of the purchased-flag redundancy.
func PurchasedList(c *savefile.Container) []string {
	return utils.StringSlice(c.Player(), "purchasedServers")
}

func project(section map[string]any, hostname string) Server {
	rec := savefile.Record(section[hostname])
	return Server{
		Hostname:        hostname,
		MaxRAM:          utils.ToFloat(rec["maxRam"]),
		Cores:           utils.ToInt(rec["cpuCores"]),
		Security:        utils.ToFloat(rec["hackDifficulty"]),
		MinSecurity:     utils.ToFloat(rec["minDifficulty"]),
		Money:           utils.ToFloat(rec["moneyAvailable"]),
		MaxMoney:        utils.ToFloat(rec["moneyMax"]),
		RequiredHacking: utils.ToInt(rec["requiredHackingSkill"]),
		Admin:           utils.ToBool(rec["hasAdminRights"]),
		Backdoor:        utils.ToBool(rec["backdoorInstalled"]),
		Purchased:       utils.ToBool(rec["purchasedByPlayer"]),
	}
}
