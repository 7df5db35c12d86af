// Package company projects and mutates company reputation and favor.
//
// The companies section is sparse: the projection merges it with the
// full static catalog, defaulting absent companies to zero. The
// mutation side enforces zero-suppression keyed on baseline presence,
// so exports never reintroduce companies the player never touched.
package company
