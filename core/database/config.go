package database

// Config holds configuration for the audit trail database.
type Config struct {
	// Driver is the database driver (sqlite, mysql). Sqlite is the
	// default for local editing sessions.
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the sqlite database file. ":memory:" is accepted.
	Path string `mapstructure:"path" default:"save-editor.db"`
	// Host is the mysql host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the mysql port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the mysql user.
	User string `mapstructure:"user" default:"root"`
	// Password is the mysql password.
	Password string `mapstructure:"password" default:""`
	// Name is the mysql database name.
	Name string `mapstructure:"name" default:"save_editor"`
	// TimeoutSeconds bounds connection setup and I/O for mysql.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
