package hacknet_test

import (
	"encoding/json"
	"testing"

	"save-editor/core/document"
	"save-editor/core/savefile"
	"save-editor/core/utils"
	"save-editor/feature/hacknet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, player map[string]any) *document.Store {
	t.Helper()
	raw, err := json.Marshal(player)
	require.NoError(t, err)

	wire, err := json.Marshal(map[string]any{
		"type": "BitburnerSaveObject",
		"data": map[string]string{"PlayerSave": string(raw)},
	})
	require.NoError(t, err)

	container, err := savefile.Parse(wire)
	require.NoError(t, err)

	store := document.NewStore()
	store.Load(container)
	return store
}

func TestNodesNormalizeBothWireForms(t *testing.T) {
	store := load(t, map[string]any{
		"hacknetNodes": []any{
			"hacknet-node-0",
			map[string]any{"name": "hacknet-node-1", "level": float64(12), "ram": float64(64), "cores": float64(4)},
		},
	})

	nodes := hacknet.Nodes(store.Working())
	require.Len(t, nodes, 2)

	// A bare identifier string means an uninitialized node at defaults.
	assert.Equal(t, hacknet.Node{Name: "hacknet-node-0", Level: 1, RAM: 1, Cores: 1}, nodes[0])
	assert.Equal(t, hacknet.Node{Name: "hacknet-node-1", Level: 12, RAM: 64, Cores: 4}, nodes[1])
}

func TestApplyNodeMaterializesBareString(t *testing.T) {
	store := load(t, map[string]any{"hacknetNodes": []any{"hacknet-node-0"}})
	working := store.Working()

	level := 5
	hacknet.ApplyNode(working, "hacknet-node-0", hacknet.NodeEdit{Level: &level})

	// The edit forced the record form; unedited fields keep defaults.
	raw := utils.Slice(working.Player(), "hacknetNodes")
	require.Len(t, raw, 1)
	_, isString := raw[0].(string)
	assert.False(t, isString)

	node, ok := hacknet.FindNode(working, "hacknet-node-0")
	require.True(t, ok)
	assert.Equal(t, hacknet.Node{Name: "hacknet-node-0", Level: 5, RAM: 1, Cores: 1}, node)
}

func TestApplyNodeClamps(t *testing.T) {
	store := load(t, map[string]any{
		"hacknetNodes": []any{map[string]any{"name": "n0", "level": float64(3), "ram": float64(8), "cores": float64(2)}},
	})
	working := store.Working()

	level, cores := -5, 0
	ram := float64(-1)
	hacknet.ApplyNode(working, "n0", hacknet.NodeEdit{Level: &level, RAM: &ram, Cores: &cores})

	node, _ := hacknet.FindNode(working, "n0")
	assert.Equal(t, hacknet.Node{Name: "n0", Level: 1, RAM: 1, Cores: 1}, node)

	// Unknown names are ignored.
	hacknet.ApplyNode(working, "ghost", hacknet.NodeEdit{Level: &level})
	assert.Len(t, hacknet.Nodes(working), 1)
}

func TestRevertNodeRestoresWireForm(t *testing.T) {
	store := load(t, map[string]any{"hacknetNodes": []any{"hacknet-node-0"}})
	working, baseline := store.Working(), store.Baseline()

	level := 9
	hacknet.ApplyNode(working, "hacknet-node-0", hacknet.NodeEdit{Level: &level})
	require.True(t, store.HasChanges())

	// Revert restores the bare-string form the baseline held.
	hacknet.RevertNode(working, baseline, "hacknet-node-0")
	raw := utils.Slice(working.Player(), "hacknetNodes")
	require.Len(t, raw, 1)
	assert.Equal(t, "hacknet-node-0", raw[0])
	assert.False(t, store.HasChanges())
}

func TestLedgerProjection(t *testing.T) {
	store := load(t, map[string]any{
		"hashManager": map[string]any{
			"hashes":   float64(120),
			"capacity": float64(500),
			"upgrades": map[string]any{
				"Sell for Money":          float64(3),
				"Improve Studying":        float64(1),
				"Reduce Minimum Security": float64(0),
			},
		},
	})

	ledger := hacknet.Ledger(store.Working())
	assert.Equal(t, float64(120), ledger.Hashes)
	assert.Equal(t, float64(500), ledger.Capacity)
	require.Len(t, ledger.Upgrades, 3)
	assert.Equal(t, hacknet.Upgrade{Name: "Improve Studying", Count: 1}, ledger.Upgrades[0])
	assert.Equal(t, hacknet.Upgrade{Name: "Reduce Minimum Security", Count: 0}, ledger.Upgrades[1])
	assert.Equal(t, hacknet.Upgrade{Name: "Sell for Money", Count: 3}, ledger.Upgrades[2])
}

func TestApplyHashesClampsToCapacity(t *testing.T) {
	store := load(t, map[string]any{
		"hashManager": map[string]any{"hashes": float64(10), "capacity": float64(100)},
	})
	working := store.Working()

	assert.Equal(t, float64(100), hacknet.ApplyHashes(working, 500))
	assert.Equal(t, float64(0), hacknet.ApplyHashes(working, -3))
	assert.Equal(t, float64(42), hacknet.ApplyHashes(working, 42))
	assert.Equal(t, float64(42), hacknet.Ledger(working).Hashes)
}

func TestApplyUpgradeClampsToZero(t *testing.T) {
	store := load(t, map[string]any{
		"hashManager": map[string]any{"hashes": float64(0), "capacity": float64(0), "upgrades": map[string]any{}},
	})
	working := store.Working()

	assert.Equal(t, 4, hacknet.ApplyUpgrade(working, "Sell for Money", 4))
	assert.Equal(t, 0, hacknet.ApplyUpgrade(working, "Sell for Money", -2))

	ledger := hacknet.Ledger(working)
	require.Len(t, ledger.Upgrades, 1)
	assert.Equal(t, hacknet.Upgrade{Name: "Sell for Money", Count: 0}, ledger.Upgrades[0])
}

func TestRevertLedger(t *testing.T) {
	store := load(t, map[string]any{
		"hashManager": map[string]any{
			"hashes":   float64(10),
			"capacity": float64(100),
			"upgrades": map[string]any{"Sell for Money": float64(1)},
		},
	})
	working, baseline := store.Working(), store.Baseline()

	hacknet.ApplyHashes(working, 99)
	hacknet.ApplyUpgrade(working, "Improve Studying", 7)
	require.True(t, store.HasChanges())

	hacknet.RevertLedger(working, baseline)
	assert.False(t, store.HasChanges())
}
