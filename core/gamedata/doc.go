// Package gamedata holds the static game-data catalogs consumed by the
// reconciliation engine: known company names and their job titles, the
// augmentation catalog with prerequisite chains, and server hardware
// limits. Pure constant lookup data; nothing here reads a save.
package gamedata
