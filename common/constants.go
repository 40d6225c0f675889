package common

const (
	// ConfigFileName is the name of the tool configuration file searched for
	// in the working directory when no explicit path is given
	ConfigFileName = "cdb.toml"

	// DatabaseFileName is the default name of the generated compilation
	// database
	DatabaseFileName = "compile_commands.json"

	CdbVersion = "0.1.0"
)
