// Package config loads the application configuration.
//
// Configuration is assembled from struct-tag defaults, an optional
// .env file (godotenv) and environment variables (viper). Nested keys
// map to underscore-separated environment variables, e.g. server.port
// binds to SERVER_PORT.
//
// Each subsystem (server, storage, log, database) owns its partial
// Config struct; this package only composes and hydrates them.
package config
