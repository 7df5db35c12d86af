// Package document holds container-level editing state.
//
// The Store keeps two deep-cloned instances of the decoded container:
// the pristine baseline and the live working copy. It owns no
// section-specific knowledge; domain packages read and mutate the
// working container and the store answers whether anything changed.
package document
