package hacknet

import (
	"sort"

	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Node is one normalized hacknet node. On the wire a node is either a
// bare identifier string, meaning an uninitialized node at defaults, or
// a structured record; both forms project to this shape.
type Node struct {
	Name  string  `json:"name"`
	Level int     `json:"level"`
	RAM   float64 `json:"ram"`
	Cores int     `json:"cores"`
}

// Upgrade is one hash-upgrade ledger entry.
type Upgrade struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HashLedger is the projected hash manager state.
type HashLedger struct {
	Hashes   float64   `json:"hashes"`
	Capacity float64   `json:"capacity"`
	Upgrades []Upgrade `json:"upgrades"`
}

const (
	defaultLevel = 1
	defaultRAM   = 1
	defaultCores = 1
)

// Nodes projects the hacknet nodes in wire order.
func Nodes(c *savefile.Container) []Node {
	raw := utils.Slice(c.Player(), "hacknetNodes")
	out := make([]Node, 0, len(raw))
	for _, entry := range raw {
		if node, ok := normalize(entry); ok {
			out = append(out, node)
		}
	}
	return out
}

// FindNode returns the normalized node with the given name.
func FindNode(c *savefile.Container, name string) (Node, bool) {
	for _, node := range Nodes(c) {
		if node.Name == name {
			return node, true
		}
	}
	return Node{}, false
}

// Ledger projects the hash manager, upgrades sorted by name.
func Ledger(c *savefile.Container) HashLedger {
	manager := utils.Obj(c.Player(), "hashManager")
	ledger := HashLedger{
		Hashes:   utils.ToFloat(manager["hashes"]),
		Capacity: utils.ToFloat(manager["capacity"]),
		Upgrades: []Upgrade{},
	}
	for name, count := range utils.Obj(manager, "upgrades") {
		ledger.Upgrades = append(ledger.Upgrades, Upgrade{Name: name, Count: utils.ToInt(count)})
	}
	sort.Slice(ledger.Upgrades, func(i, j int) bool {
		return ledger.Upgrades[i].Name < ledger.Upgrades[j].Name
	})
	return ledger
}

// normalize maps either wire form of a node onto the projected shape.
func normalize(entry any) (Node, bool) {
	if name, ok := entry.(string); ok {
		return Node{Name: name, Level: defaultLevel, RAM: defaultRAM, Cores: defaultCores}, true
	}
	rec := savefile.Record(entry)
	if rec == nil {
		return Node{}, false
	}
	name := utils.ToString(rec["name"])
	if name == "" {
		return Node{}, false
	}
	return Node{
		Name:  name,
		Level: utils.ToInt(rec["level"]),
		RAM:   utils.ToFloat(rec["ram"]),
		Cores: utils.ToInt(rec["cores"]),
	}, true
}

// entryName reads the identifier off either wire form.
func entryName(entry any) string {
	if name, ok := entry.(string); ok {
		return name
	}
	return savefile.RecordString(entry, "name")
}
