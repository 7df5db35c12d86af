// Package faction projects and mutates faction state.
//
// A faction's scalar fields (reputation, favor, banned) live in the
// factions section keyed by name; membership is redundantly stored in
// the player-level factions and factionInvitations lists, which win
// over legacy per-record booleans. Every mutation keeps all locations
// consistent in one synchronous step, and re-inserted list entries
// return to their baseline position so net-zero edits leave no trace.
package faction
