// Package savefile models the save container schema.
//
// A container is a root JSON document with a fixed type tag and a map
// from a closed set of section keys to independently JSON-encoded
// payload strings ("" marks an absent section). Parse validates the
// tag, decodes every section and strips legacy ctor/data envelopes;
// Marshal is the exact inverse.
//
// Section payloads stay schemaless (map[string]any trees) because two
// record generations share each section; Record normalizes individual
// entries so the mutation layer never re-detects shape.
package savefile
