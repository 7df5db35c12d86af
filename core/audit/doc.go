// Package audit persists a trail of applied mutations.
//
// Every committed update (domain, key, human-readable detail, session
// id) is appended to the edit_audit table. The Recorder is nil-safe:
// when no database is configured the editor runs without a trail and
// nothing else changes.
package audit
