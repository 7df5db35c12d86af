// Package hacknet projects and mutates hacknet nodes and the hash
// ledger. A node arrives on the wire either as a bare identifier
// string (an uninitialized node at defaults) or as a structured record;
// editing a bare node materializes the record form, while reverting
// restores whichever form the baseline held.
package hacknet
