package launcher

import (
	"fmt"

	"github.com/kskskav/dmx"
	"github.com/kskskav/dmx/internal/system"
)

// Choose walks the menu hierarchy until the user picks a program or
// cancels out of the top level. prompt seeds the top-level prompt;
// nested levels accumulate "key" + separator per level, so descending
// into ssh under an empty prompt shows "ssh/". A nil Program with a
// nil error means the user cancelled.
func Choose(d *dmx.Dmx, m *Menu, prompt string) (*Program, error) {
	sep := m.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return choose(d, sep, prompt, m.Entries)
}

func choose(d *dmx.Dmx, sep, prompt string, entries []Entry) (*Program, error) {
	items := rows(entries, sep)

	for {
		idx, ok, err := d.Select(prompt, items)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Cancelling bubbles up one level; at the top it ends the
			// whole selection.
			return nil, nil
		}

		switch e := entries[idx]; {
		case e.Program != nil:
			return e.Program, nil
		case e.Submenu != nil:
			p, err := choose(d, sep, prompt+e.Submenu.Key+sep, e.Submenu.Entries)
			if err != nil {
				return nil, err
			}
			if p != nil {
				return p, nil
			}
			// Cancelled below: redisplay this level.
		}
	}
}

// Launch replaces the current process image with the program's command
// line. On success it never returns; any return is a failure.
func Launch(p *Program) error {
	if len(p.Exec) == 0 {
		return fmt.Errorf("program %q has an empty command", p.Key)
	}
	return system.DefaultSpawner().ReplaceProcess(p.Exec[0], p.Exec[1:]...)
}

// Run is Choose followed by Launch. A nil return means the user
// cancelled; a successful launch never returns.
func Run(d *dmx.Dmx, m *Menu, prompt string) error {
	p, err := Choose(d, m, prompt)
	if err != nil || p == nil {
		return err
	}
	return Launch(p)
}
