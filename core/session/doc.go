// Package session ties the codec and the document store into the
// load→edit→export lifecycle.
//
// A Session owns one loaded save: its sticky wire encoding, the
// baseline/working document store, and the export filename derivation.
// The Manager holds the single live session and serializes access so a
// new load simply replaces whatever was in flight.
//
// Loading applies the editor-used exploit marker before the baseline
// clone is taken; the marker is loaded state, not an edit.
package session
