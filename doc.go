// Package dmx drives dmenu (or any dmenu-compatible picker) to let a
// user select from a list of options, and reports which option was
// chosen.
//
// dmenu reads newline-delimited option lines on stdin and writes the
// chosen line to stdout, or nothing if the user cancels. This package
// handles the rest: rendering typed options into aligned lines, feeding
// them to the picker subprocess, and mapping the picker's raw output
// back to an index into the original option slice. The text of an
// option is kept separate from its programmatic meaning; callers get
// back a position, not a string to re-parse.
//
// Any type implementing [Item] can be offered for selection. The
// built-in [Pair] shape pairs a short, easily-typed key with a verbose
// description and aligns the descriptions in a column:
//
//	items := []dmx.Item{
//		dmx.Pair{Key: "ff", Desc: "Firefox Web Browser"},
//		dmx.Pair{Key: "geany", Desc: "Geany Text Editor"},
//		dmx.Pair{Key: "wx", Desc: "Current Local Weather"},
//	}
//
//	d := dmx.Default()
//	idx, ok, err := d.Select("run:", items)
//
// which presents to the user as:
//
//	ff     Firefox Web Browser
//	geany  Geany Text Editor
//	wx     Current Local Weather
//
// The picker's appearance (binary path, font, colors) is held in [Dmx],
// which can be built from a small TOML file shared across programs; see
// [FromFile] and [AutoConfig].
//
// A dmenu binary is required at selection time, but nothing here is
// dmenu-specific beyond its flag schema; any program honoring the same
// flags and line protocol works.
package dmx
