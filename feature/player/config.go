package player

// Config holds the player identity configuration.
type Config struct {
	// Username is used when no username has been saved yet.
	Username string `mapstructure:"username" default:""`
	// ConfigPath is the file the username is saved to. Empty means the
	// user config directory.
	ConfigPath string `mapstructure:"config_path" default:""`
}
