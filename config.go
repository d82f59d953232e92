package dmx

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kskskav/dmx/internal/system"
)

// EnvConfig names the environment variable that points AutoConfig at an
// explicit configuration file.
const EnvConfig = "DMX_CONFIG"

// ConfigName is the conventional configuration file name probed under
// the per-user config directories.
const ConfigName = "dmx.toml"

// File mirrors the on-disk TOML configuration document:
//
//	dmenu     = "/usr/bin/dmenu"
//	font      = "Terminus-12"
//	normal_bg = "#88cccc"
//	normal_fg = "#422"
//	select_bg = "#422"
//	select_fg = "#88cccc"
//
// Every field is independently optional; absent fields inherit from the
// base configuration on Merge. Unknown fields are ignored.
type File struct {
	Dmenu    *string `toml:"dmenu"`
	Font     *string `toml:"font"`
	NormalBG *string `toml:"normal_bg"`
	NormalFG *string `toml:"normal_fg"`
	SelectBG *string `toml:"select_bg"`
	SelectFG *string `toml:"select_fg"`
}

// Merge returns a copy of d with every present field of f applied.
// The result is always fully populated; d is not modified.
func (d *Dmx) Merge(f File) *Dmx {
	out := *d
	if f.Dmenu != nil {
		out.Dmenu = *f.Dmenu
	}
	if f.Font != nil {
		out.Font = *f.Font
	}
	if f.NormalBG != nil {
		out.NormalBG = *f.NormalBG
	}
	if f.NormalFG != nil {
		out.NormalFG = *f.NormalFG
	}
	if f.SelectBG != nil {
		out.SelectBG = *f.SelectBG
	}
	if f.SelectFG != nil {
		out.SelectFG = *f.SelectFG
	}
	return &out
}

// FromBytes returns a Dmx configured by a TOML byte slice, with absent
// fields taking their defaults. A malformed document returns a
// *ParseError and never a partially applied configuration.
func FromBytes(data []byte) (*Dmx, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Err: err}
	}
	return Default().Merge(f), nil
}

// FromFile returns a Dmx configured from the TOML file at path.
func FromFile(path string) (*Dmx, error) {
	data, err := system.DefaultFS().ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	d, err := FromBytes(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return d, nil
}

// AutoConfig resolves a configuration automatically. It probes, in
// order:
//
//   - the file named by $DMX_CONFIG
//   - $XDG_CONFIG_HOME/dmx.toml
//   - $HOME/.config/dmx.toml
//
// A missing, unreadable, or malformed candidate falls through to the
// next; if every candidate fails, Default is returned. AutoConfig
// never fails.
func AutoConfig() *Dmx {
	if path := os.Getenv(EnvConfig); path != "" {
		if d, err := FromFile(path); err == nil {
			return d
		}
	}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if d, err := FromFile(filepath.Join(dir, ConfigName)); err == nil {
			return d
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		if d, err := FromFile(filepath.Join(home, ".config", ConfigName)); err == nil {
			return d
		}
	}

	return Default()
}
