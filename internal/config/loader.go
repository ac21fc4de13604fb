package config

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads the TOML file at path and overlays it onto DefaultConfig. A missing file is not an error: the
// defaults are returned unchanged. A present-but-malformed file is.
func Load(path string) (File, error) {
	config := DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return File{}, err
	}
	return config, nil
}
