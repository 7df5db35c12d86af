package savefile_test

import (
	"encoding/json"
	"testing"

	"save-editor/core/savefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wireSave builds a wire container whose sections are the JSON
// encodings of the given values.
func wireSave(t *testing.T, sections map[string]any) []byte {
	t.Helper()
	data := map[string]string{}
	for key, value := range sections {
		raw, err := json.Marshal(value)
		require.NoError(t, err)
		data[key] = string(raw)
	}
	raw, err := json.Marshal(map[string]any{"type": "BitburnerSaveObject", "data": data})
	require.NoError(t, err)
	return raw
}

func TestParse(t *testing.T) {
	raw := wireSave(t, map[string]any{
		"PlayerSave": map[string]any{"money": float64(1000), "factions": []any{"CyberSec"}},
		"FactionsSave": map[string]any{
			"ctor": "JSONReviver",
			"data": map[string]any{
				"CyberSec": map[string]any{"playerReputation": float64(500)},
			},
		},
		"SomeFutureSave": map[string]any{"x": float64(1)},
	})

	c, err := savefile.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "BitburnerSaveObject", c.TypeTag)
	assert.Equal(t, float64(1000), c.Player()["money"])

	// Wrapped sections are unwrapped once at decode time.
	section := c.Sections[savefile.SectionFactions]
	require.NotNil(t, section)
	assert.True(t, section.Wrapped)
	assert.Equal(t, "JSONReviver", section.Ctor)
	assert.Contains(t, c.Factions(), "CyberSec")

	// Absent sections decode to nil, not an error.
	assert.Nil(t, c.Sections[savefile.SectionStockMarket])
	assert.Nil(t, c.Companies())

	// Unknown keys are preserved verbatim for round-trip safety.
	assert.Equal(t, `{"x":1}`, c.Extra["SomeFutureSave"])
}

func TestParseRejectsWrongTag(t *testing.T) {
	_, err := savefile.Parse([]byte(`{"type":"SomethingElse","data":{}}`))
	assert.ErrorIs(t, err, savefile.ErrInvalidContainer)

	_, err = savefile.Parse([]byte(`not json`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, savefile.ErrInvalidContainer)
}

func TestMarshalRoundTrip(t *testing.T) {
	raw := wireSave(t, map[string]any{
		"PlayerSave": map[string]any{"money": float64(42)},
		"FactionsSave": map[string]any{
			"ctor": "JSONReviver",
			"data": map[string]any{"Sector-12": map[string]any{"favor": float64(3)}},
		},
		"UnknownSave": []any{"pass", "through"},
	})

	first, err := savefile.Parse(raw)
	require.NoError(t, err)

	encoded, err := first.Marshal()
	require.NoError(t, err)

	second, err := savefile.Parse(encoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, `["pass","through"]`, second.Extra["UnknownSave"])

	// The re-applied envelope survives another trip.
	assert.True(t, second.Sections[savefile.SectionFactions].Wrapped)
}

func TestEnsureMaterializesSection(t *testing.T) {
	c, err := savefile.Parse(wireSave(t, map[string]any{}))
	require.NoError(t, err)

	assert.Nil(t, c.Companies())
	section := c.Ensure(savefile.SectionCompanies)
	section["MegaCorp"] = map[string]any{"favor": float64(1)}
	assert.Contains(t, c.Companies(), "MegaCorp")
}

func TestRecord(t *testing.T) {
	flat := map[string]any{"favor": float64(5)}
	assert.Equal(t, flat, savefile.Record(flat))

	inner := map[string]any{"favor": float64(7)}
	wrapped := map[string]any{"ctor": "FactionRecord", "data": inner}
	rec := savefile.Record(wrapped)
	require.NotNil(t, rec)

	// The normalized record aliases storage, so writes land in place.
	rec["favor"] = float64(9)
	assert.Equal(t, float64(9), inner["favor"])

	assert.Nil(t, savefile.Record("a bare string"))
	assert.Nil(t, savefile.Record(nil))
}

func TestRecordString(t *testing.T) {
	rec := map[string]any{"name": "home"}
	assert.Equal(t, "home", savefile.RecordString(rec, "name"))
	assert.Equal(t, "", savefile.RecordString(rec, "missing"))
	assert.Equal(t, "", savefile.RecordString("bare", "name"))
}
