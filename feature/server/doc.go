// Package server projects and mutates server records.
//
// Records occur in two legacy shapes (flat, or wrapped in a nested
// payload field); normalization happens once at the record boundary so
// writes always land in the live record. The player's purchased-
// hostname list is the authority for the per-record purchased flag:
// list edits sync the flags, never the reverse. Numeric edits clamp
// to the known limits instead of rejecting.
package server
