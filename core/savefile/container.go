package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ContainerType is the fixed sentinel every save container must carry.
const ContainerType = "BitburnerSaveObject"

// ErrInvalidContainer is returned when the outer type tag does not
// match ContainerType. The load is aborted; no partial container is
// ever produced.
var ErrInvalidContainer = errors.New("invalid save container")

// SectionKey identifies one independently-serialized sub-document.
type SectionKey string

// The closed enumeration of section keys. Only the player, factions,
// all-servers and companies sections are mutated by the editor; the
// rest pass through unmodified.
const (
	SectionPlayer          SectionKey = "PlayerSave"
	SectionFactions        SectionKey = "FactionsSave"
	SectionAllServers      SectionKey = "AllServersSave"
	SectionCompanies       SectionKey = "CompaniesSave"
	SectionAliases         SectionKey = "AliasesSave"
	SectionGlobalAliases   SectionKey = "GlobalAliasesSave"
	SectionStockMarket     SectionKey = "StockMarketSave"
	SectionSettings        SectionKey = "SettingsSave"
	SectionVersion         SectionKey = "VersionSave"
	SectionGangs           SectionKey = "AllGangsSave"
	SectionLastExportBonus SectionKey = "LastExportBonus"
	SectionStaneksGift     SectionKey = "StaneksGiftSave"
	SectionGo              SectionKey = "GoSave"
	SectionInfiltrations   SectionKey = "InfiltrationsSave"
)

// SectionKeys lists every known section in wire order.
var SectionKeys = []SectionKey{
	SectionPlayer,
	SectionFactions,
	SectionAllServers,
	SectionCompanies,
	SectionAliases,
	SectionGlobalAliases,
	SectionStockMarket,
	SectionSettings,
	SectionVersion,
	SectionGangs,
	SectionLastExportBonus,
	SectionStaneksGift,
	SectionGo,
	SectionInfiltrations,
}

// Section is one decoded sub-document. Payloads arrive either flat or
// wrapped in a {"ctor": ..., "data": {...}} envelope depending on the
// save-format generation; the envelope is recorded here once at decode
// time so nothing downstream re-detects shape.
type Section struct {
	// Wrapped reports whether the payload carried a ctor/data envelope.
	Wrapped bool
	// Ctor is the envelope constructor name when Wrapped.
	Ctor string
	// Value is the live decoded payload (map[string]any, []any or scalar).
	Value any
}

// Container is the decoded root save document.
type Container struct {
	// TypeTag equals ContainerType for every successfully parsed container.
	TypeTag string
	// Sections maps each known key to its decoded payload. A key that
	// was absent (empty string on the wire) maps to nil.
	Sections map[SectionKey]*Section
	// Extra preserves unrecognized wire keys verbatim for round-trip
	// safety.
	Extra map[string]string
}

// wireContainer is the bit-exact outer schema.
type wireContainer struct {
	Type string            `json:"type"`
	Data map[string]string `json:"data"`
}

// Parse decodes the outer container from JSON text, validates the type
// tag, and decodes every known section payload independently. An absent
// section decodes to nil, not an error.
func Parse(raw []byte) (*Container, error) {
	var wire wireContainer
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse save container: %w", err)
	}
	if wire.Type != ContainerType {
		return nil, fmt.Errorf("%w: unexpected type tag %q", ErrInvalidContainer, wire.Type)
	}

	c := &Container{
		TypeTag:  wire.Type,
		Sections: make(map[SectionKey]*Section, len(SectionKeys)),
	}

	known := make(map[string]struct{}, len(SectionKeys))
	for _, key := range SectionKeys {
		known[string(key)] = struct{}{}
		payload := wire.Data[string(key)]
		if payload == "" {
			c.Sections[key] = nil
			continue
		}
		section, err := parseSection(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to parse section %s: %w", key, err)
		}
		c.Sections[key] = section
	}

	for key, payload := range wire.Data {
		if _, ok := known[key]; ok {
			continue
		}
		if c.Extra == nil {
			c.Extra = map[string]string{}
		}
		c.Extra[key] = payload
	}

	return c, nil
}

// parseSection decodes one payload string and strips a ctor/data
// envelope when present.
func parseSection(payload string) (*Section, error) {
	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, err
	}
	if inner, ctor, ok := unwrap(value); ok {
		return &Section{Wrapped: true, Ctor: ctor, Value: inner}, nil
	}
	return &Section{Value: value}, nil
}

// Marshal re-encodes the container as JSON text: each section is
// stringified independently (empty string for absent), envelopes are
// re-applied, and the outer document is stringified last.
func (c *Container) Marshal() ([]byte, error) {
	data := make(map[string]string, len(SectionKeys)+len(c.Extra))
	for _, key := range SectionKeys {
		section := c.Sections[key]
		if section == nil {
			data[string(key)] = ""
			continue
		}
		payload, err := marshalSection(section)
		if err != nil {
			return nil, fmt.Errorf("failed to encode section %s: %w", key, err)
		}
		data[string(key)] = payload
	}
	for key, payload := range c.Extra {
		data[key] = payload
	}

	return json.Marshal(wireContainer{Type: c.TypeTag, Data: data})
}

func marshalSection(section *Section) (string, error) {
	value := section.Value
	if section.Wrapped {
		value = map[string]any{"ctor": section.Ctor, "data": section.Value}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Value returns the section payload as an object, or nil when the
// section is absent or not object-shaped.
func (c *Container) Value(key SectionKey) map[string]any {
	section := c.Sections[key]
	if section == nil {
		return nil
	}
	m, _ := section.Value.(map[string]any)
	return m
}

// Ensure returns the section payload as an object, materializing an
// empty flat section when absent. Mutations that create the first
// entry of a section go through here.
func (c *Container) Ensure(key SectionKey) map[string]any {
	if m := c.Value(key); m != nil {
		return m
	}
	m := map[string]any{}
	c.Sections[key] = &Section{Value: m}
	return m
}

// Player returns the player section payload.
func (c *Container) Player() map[string]any {
	return c.Value(SectionPlayer)
}

// Factions returns the factions section payload.
func (c *Container) Factions() map[string]any {
	return c.Value(SectionFactions)
}

// Servers returns the all-servers section payload.
func (c *Container) Servers() map[string]any {
	return c.Value(SectionAllServers)
}

// Companies returns the companies section payload.
func (c *Container) Companies() map[string]any {
	return c.Value(SectionCompanies)
}
