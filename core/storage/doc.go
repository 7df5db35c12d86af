// Package storage wraps the S3-compatible object storage the editor
// optionally talks to: fetching source save files and mirroring
// exported artifacts under a backup prefix.
//
// The Client interface keeps the minio dependency behind a seam so
// handlers and commands are testable with the mocks subpackage.
package storage
