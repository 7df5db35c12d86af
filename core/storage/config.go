package storage

// Config holds configuration for the object storage backend.
// Storage is optional: when Bucket is empty the editor works purely
// with local files.
type Config struct {
	// Endpoint is the S3-compatible endpoint (host[:port]).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key id.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Bucket is the bucket holding save files and export backups.
	Bucket string `mapstructure:"bucket" default:""`
	// UseSSL enables TLS towards the endpoint.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// BackupPrefix is the object prefix exports are mirrored under.
	BackupPrefix string `mapstructure:"backup_prefix" default:"backups"`
	// TimeoutSeconds bounds connection setup and per-request I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether remote storage is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}
