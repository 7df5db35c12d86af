// Package middleware contains HTTP middleware for the Fiber application.
//
// Auth validates the configured API key when one is set; an empty key
// leaves the editor open for local sessions. RayID attaches a unique
// request id to every request and response so log lines from one edit
// session can be correlated.
//
// Both are registered globally in the serve command, ahead of the
// feature routes.
package middleware
