// Package codec reverses and re-applies the wire encoding of a save
// file.
//
// Three encodings exist: plain JSON text, base64-wrapped JSON text and
// gzip-compressed JSON. Gzip is chosen by the filename extension hint
// supplied by the loader; the other two are tried in order. Whatever
// encoding decoded the file is re-applied on export, so the artifact a
// user downloads matches the file they loaded.
package codec
