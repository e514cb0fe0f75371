package fsm

import (
	"errors"
	"os"

	"github.com/lixenwraith/tuikit/config"
)

// LoadFile reads a TOML transition table from disk
// Parse errors carry the file path
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, config.NewParseError(path, 0, err)
	}
	cfg, err := LoadConfig(data)
	var pe *config.ParseError
	if errors.As(err, &pe) {
		pe.Path = path
	}
	return cfg, err
}
