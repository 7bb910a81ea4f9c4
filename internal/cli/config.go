package cli

import (
	"github.com/BurntSushi/toml"

	apperrors "github.com/mapgraph/mapgraph/pkg/errors"
	"github.com/mapgraph/mapgraph/pkg/maze"
	"github.com/mapgraph/mapgraph/pkg/render/dot"
)

// config mirrors the optional TOML file accepted via --config.
//
//	row_order = "bottom-up"  # or "top-down"
//
//	[colors]
//	wall     = "palegreen"
//	entrance = "yellow"
//	exit     = "red"
//	ground   = "white"
//
// Missing fields keep their defaults; an empty file is valid.
type config struct {
	RowOrder string       `toml:"row_order"`
	Colors   colorsConfig `toml:"colors"`
}

type colorsConfig struct {
	Wall     string `toml:"wall"`
	Entrance string `toml:"entrance"`
	Exit     string `toml:"exit"`
	Ground   string `toml:"ground"`
}

// loadConfig decodes the TOML file at path. Unknown keys are rejected so a
// typo does not silently fall back to defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, apperrors.New(apperrors.ErrCodeInvalidConfig,
			"config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// rowOrder resolves the configured coordinate convention.
func (c config) rowOrder() (maze.RowOrder, error) {
	switch c.RowOrder {
	case "", "bottom-up":
		return maze.RowOrderBottomUp, nil
	case "top-down":
		return maze.RowOrderTopDown, nil
	default:
		return 0, apperrors.New(apperrors.ErrCodeInvalidConfig,
			"unknown row_order %q (want \"bottom-up\" or \"top-down\")", c.RowOrder)
	}
}

// palette returns the default palette with any configured colors applied.
func (c config) palette() dot.Palette {
	p := dot.DefaultPalette()
	if c.Colors.Wall != "" {
		p.Wall = c.Colors.Wall
	}
	if c.Colors.Entrance != "" {
		p.Entrance = c.Colors.Entrance
	}
	if c.Colors.Exit != "" {
		p.Exit = c.Colors.Exit
	}
	if c.Colors.Ground != "" {
		p.Ground = c.Colors.Ground
	}
	return p
}
