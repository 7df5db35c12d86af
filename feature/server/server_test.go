package server_test

import (
	"encoding/json"
	"testing"

	"save-editor/core/document"
	"save-editor/core/savefile"
	"save-editor/feature/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, sections map[string]any) *document.Store {
	t.Helper()
	data := map[string]string{}
	for key, value := range sections {
		raw, err := json.Marshal(value)
		require.NoError(t, err)
		data[key] = string(raw)
	}
	wire, err := json.Marshal(map[string]any{"type": "BitburnerSaveObject", "data": data})
	require.NoError(t, err)

	container, err := savefile.Parse(wire)
	require.NoError(t, err)

	store := document.NewStore()
	store.Load(container)
	return store
}

// serverRecord builds a full record the way real saves carry them, so
// a revert that rewrites every field lands back on the loaded state.
func serverRecord(fields map[string]any) map[string]any {
	rec := map[string]any{
		"maxRam":               float64(8),
		"cpuCores":             float64(1),
		"hackDifficulty":       float64(1),
		"minDifficulty":        float64(1),
		"moneyAvailable":       float64(0),
		"moneyMax":             float64(0),
		"requiredHackingSkill": float64(1),
		"hasAdminRights":       false,
		"backdoorInstalled":    false,
		"purchasedByPlayer":    false,
	}
	for k, v := range fields {
		rec[k] = v
	}
	return rec
}

func TestProjectOrdering(t *testing.T) {
	store := load(t, map[string]any{
		"AllServersSave": map[string]any{
			"n00dles":  serverRecord(nil),
			"home":     serverRecord(nil),
			"pserv-1":  serverRecord(map[string]any{"purchasedByPlayer": true}),
			"pserv-0":  serverRecord(map[string]any{"purchasedByPlayer": true}),
			"foodnstuff": serverRecord(nil),
		},
		"PlayerSave": map[string]any{"purchasedServers": []any{"pserv-0", "pserv-1"}},
	})

	projected := server.Project(store.Working())
	require.Len(t, projected, 5)

	hostnames := make([]string, 0, len(projected))
	for _, s := range projected {
		hostnames = append(hostnames, s.Hostname)
	}
	assert.Equal(t, []string{"home", "pserv-0", "pserv-1", "foodnstuff", "n00dles"}, hostnames)
}

func TestApplyClamps(t *testing.T) {
	store := load(t, map[string]any{
		"AllServersSave": map[string]any{"home": serverRecord(nil)},
	})
	working := store.Working()

	ram := float64(1000) // snaps down to 512
	cores := 99          // clamps to 8
	money := float64(-5) // clamps to 0
	server.Apply(working, "home", server.Edit{MaxRAM: &ram, Cores: &cores, Money: &money})

	s, ok := server.Find(working, "home")
	require.True(t, ok)
	assert.Equal(t, float64(512), s.MaxRAM)
	assert.Equal(t, 8, s.Cores)
	assert.Equal(t, float64(0), s.Money)

	low := float64(0.25)
	zero := 0
	server.Apply(working, "home", server.Edit{MaxRAM: &low, Cores: &zero})
	s, _ = server.Find(working, "home")
	assert.Equal(t, float64(1), s.MaxRAM)
	assert.Equal(t, 1, s.Cores)
}

func TestApplyIgnoresUnknownHostname(t *testing.T) {
	store := load(t, map[string]any{
		"AllServersSave": map[string]any{"home": serverRecord(nil)},
	})
	working := store.Working()

	ram := float64(64)
	server.Apply(working, "no-such-host", server.Edit{MaxRAM: &ram})
	assert.False(t, store.HasChanges())
	assert.NotContains(t, working.Servers(), "no-such-host")
}

func TestApplyWritesThroughWrappedRecord(t *testing.T) {
	store := load(t, map[string]any{
		"AllServersSave": map[string]any{
			"home": map[string]any{
				"ctor": "Server",
				"data": serverRecord(nil),
			},
		},
	})
	working := store.Working()

	admin := true
	server.Apply(working, "home", server.Edit{Admin: &admin})

	s, ok := server.Find(working, "home")
	require.True(t, ok)
	assert.True(t, s.Admin)

	// The envelope survives the write.
	rec, _ := working.Servers()["home"].(map[string]any)
	assert.Equal(t, "Server", rec["ctor"])
}

func TestPurchasedListSync(t *testing.T) {
	store := load(t, map[string]any{
		"AllServersSave": map[string]any{
			"home":    serverRecord(nil),
			"pserv-0": serverRecord(map[string]any{"purchasedByPlayer": true}),
			"foo":     serverRecord(map[string]any{"purchasedByPlayer": false}),
		},
		"PlayerSave": map[string]any{"purchasedServers": []any{"pserv-0"}},
	})
	working, baseline := store.Working(), store.Baseline()

	// Adding "foo" flips its record flag on; dropping "pserv-0" flips
	// its flag off.
	server.ApplyPurchasedList(working, []string{"foo"})
	assert.Equal(t, []string{"foo"}, server.PurchasedList(working))

	s, _ := server.Find(working, "foo")
	assert.True(t, s.Purchased)
	s, _ = server.Find(working, "pserv-0")
	assert.False(t, s.Purchased)

	// Hostnames without a record only change the list.
	server.ApplyPurchasedList(working, []string{"foo", "ghost"})
	assert.NotContains(t, working.Servers(), "ghost")

	server.RevertPurchasedList(working, baseline)
	assert.Equal(t, []string{"pserv-0"}, server.PurchasedList(working))
	assert.False(t, store.HasChanges())
}

func TestRevert(t *testing.T) {
	store := load(t, map[string]any{
		"AllServersSave": map[string]any{
			"home": serverRecord(map[string]any{"hackDifficulty": float64(5), "moneyAvailable": float64(100)}),
		},
	})
	working, baseline := store.Working(), store.Baseline()

	sec := float64(99)
	backdoor := true
	server.Apply(working, "home", server.Edit{Security: &sec, Backdoor: &backdoor})
	require.True(t, store.HasChanges())

	server.Revert(working, baseline, "home")
	assert.False(t, store.HasChanges())

	// A record absent from baseline is dropped on revert.
	working.Servers()["rogue"] = serverRecord(nil)
	server.Revert(working, baseline, "rogue")
	assert.NotContains(t, working.Servers(), "rogue")
}
