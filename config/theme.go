package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tuikit/color"
)

// Theme is the resolved set of colors widgets fall back to
type Theme struct {
	Foreground      color.Packed
	Background      color.Packed
	FocusForeground color.Packed
	FocusBackground color.Packed
	Palette         []color.Packed
}

// themeFile is the on-disk shape of a theme
type themeFile struct {
	Foreground      string   `yaml:"foreground" validate:"omitempty,argb"`
	Background      string   `yaml:"background" validate:"omitempty,argb"`
	FocusForeground string   `yaml:"focus_foreground" validate:"omitempty,argb"`
	FocusBackground string   `yaml:"focus_background" validate:"omitempty,argb"`
	Palette         []string `yaml:"palette" validate:"max=32,dive,argb"`
}

// DefaultTheme uses a copy of the chart palette and leaves fg/bg unset
func DefaultTheme() Theme {
	return Theme{
		FocusForeground: color.RGB(0, 0, 0),
		FocusBackground: color.RGB(0x00, 0xBC, 0xD4),
		Palette:         slices.Clone(color.ChartPalette[:]),
	}
}

// PaletteColor cycles the theme palette with a true modulo
// An empty palette falls back to the chart palette
func (t Theme) PaletteColor(index int) color.Packed {
	n := len(t.Palette)
	if n == 0 {
		return color.ChartColor(index)
	}
	return t.Palette[((index%n)+n)%n]
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadTheme reads and validates a YAML theme file
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, NewParseError(path, 0, err)
	}
	th, err := parseTheme(path, data)
	if err != nil {
		return Theme{}, err
	}
	return th, nil
}

// ParseTheme decodes a YAML theme document
// Keys left out keep their DefaultTheme values
func ParseTheme(data []byte) (Theme, error) {
	return parseTheme("<theme>", data)
}

func parseTheme(path string, data []byte) (Theme, error) {
	var raw themeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Theme{}, NewParseError(path, extractLine(err), err)
	}
	if err := Validate(&raw); err != nil {
		return Theme{}, err
	}

	th := DefaultTheme()
	assign := func(dst *color.Packed, s string) {
		if s == "" {
			return
		}
		// already checked by the argb tag
		c, _ := color.ParseHex(s)
		*dst = c
	}
	assign(&th.Foreground, raw.Foreground)
	assign(&th.Background, raw.Background)
	assign(&th.FocusForeground, raw.FocusForeground)
	assign(&th.FocusBackground, raw.FocusBackground)

	if len(raw.Palette) > 0 {
		th.Palette = make([]color.Packed, len(raw.Palette))
		for i, s := range raw.Palette {
			c, err := color.ParseHex(s)
			if err != nil {
				return Theme{}, NewValidationError(fmt.Sprintf("palette[%d]", i), err.Error(), err)
			}
			th.Palette[i] = c
		}
	}
	return th, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
