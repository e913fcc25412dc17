package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/style"
)

// themeFile is the on-disk theme format:
//
//	classes:
//	  primary:
//	    color: "#ff3300"
//	  panel:
//	    background_color: rgba(0, 0, 0, 0.5)
type themeFile struct {
	Classes map[string]themeClass `yaml:"classes"`
}

type themeClass struct {
	Color           string `yaml:"color"`
	BackgroundColor string `yaml:"background_color"`
	BorderColor     string `yaml:"border_color"`
}

func loadTheme(path string) ([]style.Class, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return parseTheme(data)
}

// parseTheme decodes a theme into classes sorted by name. Empty slots are
// left unset.
func parseTheme(data []byte) ([]style.Class, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}

	classes := make([]style.Class, 0, len(f.Classes))
	for _, name := range slices.Sorted(maps.Keys(f.Classes)) {
		tc := f.Classes[name]
		c := style.NewClass(name)
		var err error
		if c.Color, err = themeColor(tc.Color); err != nil {
			return nil, fmt.Errorf("class %q color: %w", name, err)
		}
		if c.BackgroundColor, err = themeColor(tc.BackgroundColor); err != nil {
			return nil, fmt.Errorf("class %q background_color: %w", name, err)
		}
		if c.BorderColor, err = themeColor(tc.BorderColor); err != nil {
			return nil, fmt.Errorf("class %q border_color: %w", name, err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func themeColor(s string) (*plinth.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := style.ParseColorNamed(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
