package savefile

import "save-editor/core/utils"

// unwrap strips a {"ctor": ..., "data": {...}} envelope. It reports
// false for anything that is not envelope-shaped.
func unwrap(value any) (map[string]any, string, bool) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, "", false
	}
	ctor, ok := m["ctor"].(string)
	if !ok {
		return nil, "", false
	}
	inner, ok := m["data"].(map[string]any)
	if !ok {
		return nil, "", false
	}
	return inner, ctor, true
}

// Record normalizes an entry found inside a section. Individual
// faction, company and server records occur flat or wrapped in a
// ctor/data envelope depending on the save generation; both normalize
// to the inner object. The returned map aliases the stored record, so
// writes through it land in the container.
func Record(value any) map[string]any {
	if inner, _, ok := unwrap(value); ok {
		return inner
	}
	m, _ := value.(map[string]any)
	return m
}

// RecordString reads a string field from a normalized record.
func RecordString(value any, field string) string {
	rec := Record(value)
	if rec == nil {
		return ""
	}
	raw, ok := rec[field]
	if !ok {
		return ""
	}
	return utils.ToString(raw)
}
