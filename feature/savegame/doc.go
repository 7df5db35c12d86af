// Package savegame drives the session lifecycle over HTTP: loading a
// save from an upload or from object storage, reporting status,
// reverting every edit at once, and exporting the re-encoded document.
package savegame
