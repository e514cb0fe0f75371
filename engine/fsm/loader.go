package fsm

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tuikit/config"
)

// LoadConfig decodes and validates a TOML transition table
//
//	initial = "closed"
//	[[transitions]]
//	from = "closed"
//	event = "open"
//	to = "open"
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		line := 0
		if perr, ok := err.(toml.ParseError); ok {
			line = perr.Position.Line
		}
		return Config{}, config.NewParseError("<fsm>", line, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, config.NewValidationError(undecoded[0].String(), "unknown key", nil)
	}
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := Compile(cfg); err != nil {
		return Config{}, config.NewValidationError("transitions", err.Error(), err)
	}
	return cfg, nil
}

// LoadTable is LoadConfig followed by Compile
func LoadTable(data []byte) (*Table, error) {
	cfg, err := LoadConfig(data)
	if err != nil {
		return nil, err
	}
	t, err := Compile(cfg)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return t, nil
}
