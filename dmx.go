package dmx

import (
	"bytes"
	"io"
	"strconv"

	"github.com/kskskav/dmx/internal/system"
)

// DefaultMaxRows is the visible-row count passed to the picker when
// Dmx.MaxRows is unset.
const DefaultMaxRows = 10

// Dmx holds the appearance and executable parameters passed to the
// picker on its command line. Construct one with Default, FromFile, or
// AutoConfig; it is read-only thereafter and may be shared across any
// number of Select calls.
type Dmx struct {
	// Dmenu is the path to the dmenu binary. If it is on $PATH, the
	// default value of "dmenu" works fine.
	Dmenu string
	// Font in xlfd or xft format, depending on the dmenu build.
	Font string
	// NormalBG is the item background color.
	NormalBG string
	// NormalFG is the item foreground color.
	NormalFG string
	// SelectBG is the selected item background color.
	SelectBG string
	// SelectFG is the selected item foreground color.
	SelectFG string
	// MaxRows caps the picker's visible row count. Menus with fewer
	// items request exactly as many rows as they have lines.
	MaxRows int
}

// Default returns the built-in parameter set.
func Default() *Dmx {
	return &Dmx{
		Dmenu:    "dmenu",
		Font:     "LiberationMono-12",
		NormalBG: "#222",
		NormalFG: "#aaa",
		SelectBG: "#888",
		SelectFG: "#aff",
		MaxRows:  DefaultMaxRows,
	}
}

// args builds the fixed picker argument list for one invocation.
func (d *Dmx) args(prompt string, lines int) []string {
	rows := d.MaxRows
	if rows <= 0 {
		rows = DefaultMaxRows
	}
	if lines > 0 && lines < rows {
		rows = lines
	}
	return []string{
		"-l", strconv.Itoa(rows),
		"-p", prompt,
		"-fn", d.Font,
		"-nb", d.NormalBG,
		"-nf", d.NormalFG,
		"-sb", d.SelectBG,
		"-sf", d.SelectFG,
	}
}

// renderLines produces one newline-terminated byte line per item, in
// order, each rendered with the largest KeyLen over the whole set.
func renderLines(items []Item) [][]byte {
	width := 0
	for _, it := range items {
		if n := it.KeyLen(); n > width {
			width = n
		}
	}

	lines := make([][]byte, len(items))
	for i, it := range items {
		line := it.Line(width)
		if len(line) == 0 || line[len(line)-1] != '\n' {
			line = append(line, '\n')
		}
		lines[i] = line
	}
	return lines
}

// Select presents items through the picker and reports the selection.
//
// It returns the index of the chosen item and true, or ok == false if
// the user cancelled. Selecting from an empty slice is legal and yields
// no selection. Picker output that matches none of the rendered lines
// (possible with a picker configured to accept free-typed text) also
// yields no selection rather than an error: it gives the caller no
// usable index either way.
//
// Select blocks for the picker subprocess's entire lifetime. Callers
// needing non-blocking behavior run it on their own goroutine; there is
// no internal timeout or cancellation. Errors are never retried and
// never logged here; they surface as *LaunchError, *IOError, or
// *WaitError depending on the phase that failed.
func (d *Dmx) Select(prompt string, items []Item) (int, bool, error) {
	lines := renderLines(items)

	proc, err := system.DefaultSpawner().Spawn(d.Dmenu, d.args(prompt, len(lines))...)
	if err != nil {
		return 0, false, &LaunchError{Path: d.Dmenu, Err: err}
	}

	stdin := proc.Stdin()
	for _, line := range lines {
		if _, err := stdin.Write(line); err != nil {
			stdin.Close()
			proc.Wait() // reap
			return 0, false, &IOError{Op: OpWrite, Err: err}
		}
	}
	if err := stdin.Close(); err != nil {
		proc.Wait()
		return 0, false, &IOError{Op: OpWrite, Err: err}
	}

	// The picker consumes all input before producing output, so the
	// read blocks until it exits. Reading to EOF before Wait is the
	// order os/exec requires for piped output.
	choice, err := io.ReadAll(proc.Stdout())
	if err != nil {
		proc.Wait()
		return 0, false, &IOError{Op: OpRead, Err: err}
	}
	if err := proc.Wait(); err != nil {
		return 0, false, &WaitError{Err: err}
	}

	if len(choice) == 0 {
		return 0, false, nil
	}
	for i, line := range lines {
		if bytes.Equal(line, choice) {
			return i, true, nil
		}
	}
	return 0, false, nil
}
