// Package job projects and mutates the player's employment map. The
// simplest domain: a flat company→title map on the player section with
// no redundant storage, so updates are direct writes and deletes.
package job
