package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"cdb/common"
	"cdb/output"

	"github.com/pelletier/go-toml"
)

// Config is the tool configuration after loading and validation
type Config struct {
	// Compilers is a list of extra program paths to recognize as compilers,
	// matched exactly against the intercepted program path
	Compilers []string

	// OutputPath is the path of the compilation database to write
	OutputPath string

	// Format selects the database field format: output.FormatArguments or
	// output.FormatCommand
	Format string

	// Append indicates whether entries of an existing database at OutputPath
	// should be kept and merged with the new ones
	Append bool
}

// tomlConfigFile represents the configuration file as it is encoded in TOML
type tomlConfigFile struct {
	Recognition *tomlRecognition `toml:"recognition"`
	Output      *tomlOutput      `toml:"output"`
}

// tomlRecognition represents the compiler recognition section
type tomlRecognition struct {
	Compilers []string `toml:"compilers,omitempty"`
}

// tomlOutput represents the database output section
type tomlOutput struct {
	Filename string `toml:"filename,omitempty"`
	Format   string `toml:"format,omitempty"`
	Append   bool   `toml:"append"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		OutputPath: common.DatabaseFileName,
		Format:     output.FormatArguments,
	}
}

// Load reads and validates a configuration file.  An empty path means "use
// the default file name in the working directory, if it exists"; a missing
// default file yields the default configuration, while an explicitly given
// path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = common.ConfigFileName
	}

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", path, err)
	}

	// start from the defaults and move the TOML attributes over
	cfg := Default()
	if tcf.Recognition != nil {
		cfg.Compilers = tcf.Recognition.Compilers
	}
	if tcf.Output != nil {
		if tcf.Output.Filename != "" {
			cfg.OutputPath = tcf.Output.Filename
		}
		if tcf.Output.Format != "" {
			cfg.Format = tcf.Output.Format
		}
		cfg.Append = tcf.Output.Append
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks that the loaded configuration values are usable
func validate(cfg *Config) error {
	if cfg.Format != output.FormatArguments && cfg.Format != output.FormatCommand {
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return nil
}
