package envvar

const (
	// Home is the environment variable holding the user's home directory.
	Home = "HOME"

	// SingalongEnv is the environment variable used to determine the environment
	SingalongEnv = "SINGALONG_ENV"

	// SingalongConfig is the environment variable used to override the config file path
	SingalongConfig = "SINGALONG_CONFIG"

	// SingalongLogFile is the environment variable used to override the log file path
	SingalongLogFile = "SINGALONG_LOG_FILE"

	// XDGConfigHome is the XDG base directory for user configuration.
	XDGConfigHome = "XDG_CONFIG_HOME"

	// XDGDataHome is the XDG base directory for user data.
	XDGDataHome = "XDG_DATA_HOME"
)
