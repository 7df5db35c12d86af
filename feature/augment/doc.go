// Package augment projects and mutates augmentation state.
//
// Ordinary augmentations live as {name, level} records split across two
// parallel player arrays, installed and queued, with each name in at
// most one of the two at level 1. The NeuroFlux Governor instead
// encodes its levels through record multiplicity: one installed record
// at the top installed level and one queued record per level above it.
// Status changes that would strand a dependent augmentation go through
// a plan/confirm/apply cascade so the caller sees the full batch before
// anything commits.
package augment
