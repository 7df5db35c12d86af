// Package database provides the gorm connection factory for the audit
// trail. Sqlite is the default driver for local editing sessions;
// mysql stays available for shared deployments.
package database
