// Package launcher implements the hierarchical menu model behind
// dmx-launcher.
//
// A menu is a JSON array of entries. Each entry is either a program
// (has an "exec" field) or a submenu (has an "items" field holding its
// own entries), much like files and directories in a filesystem. A
// submenu's key is displayed with a separator suffix so categories
// read like directory names:
//
//	mail   Open Gmail in Chromium
//	ssh/   Common Secure Shell Connections
//
// Selecting a program launches it, replacing the launcher process;
// selecting a submenu opens a nested menu of its entries.
package launcher

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	securejoin "github.com/cyphar/filepath-securejoin"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/kskskav/dmx"
	"github.com/kskskav/dmx/internal/system"
)

// DefaultSeparator is the suffix marking submenu keys, and the joiner
// between hierarchy levels in nested prompts.
const DefaultSeparator = "/"

// Program is a launchable leaf entry.
type Program struct {
	// Key is the easily-typeable mnemonic.
	Key string
	// Desc is the verbose description.
	Desc string
	// Exec is the command and arguments to execute.
	Exec []string
}

// Submenu is a category entry containing its own entries.
type Submenu struct {
	Key     string
	Desc    string
	Entries []Entry
}

// Entry is one selectable row in a menu. Exactly one of Program or
// Submenu is non-nil.
type Entry struct {
	Program *Program
	Submenu *Submenu
}

// UnmarshalJSON decodes an entry by inspecting which fields are
// present before committing to a variant: "exec" makes a program,
// "items" makes a submenu, and an object with both or neither is
// rejected rather than silently misclassified.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var doc struct {
		Key   string          `json:"key"`
		Desc  string          `json:"desc"`
		Exec  json.RawMessage `json:"exec"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	hasExec := len(doc.Exec) > 0 && string(doc.Exec) != "null"
	hasItems := len(doc.Items) > 0 && string(doc.Items) != "null"

	switch {
	case hasExec && hasItems:
		return fmt.Errorf("entry %q has both exec and items", doc.Key)
	case hasExec:
		argv, err := parseExec(doc.Exec)
		if err != nil {
			return fmt.Errorf("entry %q: %w", doc.Key, err)
		}
		e.Program = &Program{Key: doc.Key, Desc: doc.Desc, Exec: argv}
	case hasItems:
		var entries []Entry
		if err := json.Unmarshal(doc.Items, &entries); err != nil {
			return fmt.Errorf("entry %q: %w", doc.Key, err)
		}
		e.Submenu = &Submenu{Key: doc.Key, Desc: doc.Desc, Entries: entries}
	default:
		return fmt.Errorf("entry %q has neither exec nor items", doc.Key)
	}
	return nil
}

// parseExec accepts either an argv array or a single command string
// split with shell quoting rules.
func parseExec(raw json.RawMessage) ([]string, error) {
	var argv []string
	if err := json.Unmarshal(raw, &argv); err == nil {
		return argv, nil
	}

	var cmdline string
	if err := json.Unmarshal(raw, &cmdline); err != nil {
		return nil, fmt.Errorf("exec must be a string or an array of strings")
	}
	argv, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("failed to split exec command: %w", err)
	}
	return argv, nil
}

// Menu is a parsed launcher menu.
type Menu struct {
	// Separator is appended to submenu keys in rendered lines and
	// joined between levels in nested prompts.
	Separator string
	Entries   []Entry
}

// Parse decodes and validates a menu document.
func Parse(data []byte) (*Menu, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	m := &Menu{Separator: DefaultSeparator, Entries: entries}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads and parses the menu file at path.
func Load(path string) (*Menu, error) {
	data, err := system.DefaultFS().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	return Parse(data)
}

// LoadNamed loads the menu called name from menusDir. The name is
// joined to the directory with a traversal guard so names like
// "../../etc/passwd" cannot escape it.
func LoadNamed(menusDir, name string) (*Menu, error) {
	path, err := securejoin.SecureJoin(menusDir, name+".json")
	if err != nil {
		return nil, fmt.Errorf("invalid menu name %q: %w", name, err)
	}
	return Load(path)
}

// Validate checks that every entry in the menu is well formed.
func (m *Menu) Validate() error {
	return validateEntries(m.Entries)
}

func validateEntries(entries []Entry) error {
	for _, e := range entries {
		switch {
		case e.Program != nil:
			if e.Program.Key == "" {
				return fmt.Errorf("program entry with empty key")
			}
			if len(e.Program.Exec) == 0 {
				return fmt.Errorf("program %q has an empty command", e.Program.Key)
			}
		case e.Submenu != nil:
			if e.Submenu.Key == "" {
				return fmt.Errorf("submenu entry with empty key")
			}
			if len(e.Submenu.Entries) == 0 {
				return fmt.Errorf("submenu %q has no entries", e.Submenu.Key)
			}
			if err := validateEntries(e.Submenu.Entries); err != nil {
				return fmt.Errorf("submenu %q: %w", e.Submenu.Key, err)
			}
		default:
			return fmt.Errorf("entry is neither program nor submenu")
		}
	}
	return nil
}

// Count returns the number of programs and submenus in the menu,
// recursively.
func (m *Menu) Count() (programs, submenus int) {
	return countEntries(m.Entries)
}

func countEntries(entries []Entry) (programs, submenus int) {
	for _, e := range entries {
		switch {
		case e.Program != nil:
			programs++
		case e.Submenu != nil:
			submenus++
			p, s := countEntries(e.Submenu.Entries)
			programs += p
			submenus += s
		}
	}
	return programs, submenus
}

// row adapts an Entry to dmx.Item for one menu level, carrying the
// menu's separator so rendering needs no global state.
type row struct {
	entry Entry
	sep   string
}

func (r row) KeyLen() int {
	switch {
	case r.entry.Program != nil:
		return utf8.RuneCountInString(r.entry.Program.Key)
	case r.entry.Submenu != nil:
		return utf8.RuneCountInString(r.entry.Submenu.Key)
	}
	return 0
}

// Line pads program keys an extra separator's width so program and
// submenu descriptions align on the same column:
//
//	mail    Open Gmail in Chromium
//	ssh/    Common Secure Shell Connections
func (r row) Line(keyLen int) []byte {
	sepLen := utf8.RuneCountInString(r.sep)

	var b []byte
	switch {
	case r.entry.Program != nil:
		p := r.entry.Program
		b = padKey(b, p.Key, keyLen+sepLen)
		b = append(b, ' ', ' ')
		b = append(b, p.Desc...)
	case r.entry.Submenu != nil:
		s := r.entry.Submenu
		b = padKey(b, s.Key, keyLen)
		b = append(b, r.sep...)
		b = append(b, ' ', ' ')
		b = append(b, s.Desc...)
	}
	return append(b, '\n')
}

// padKey appends key to b, space-padded on the right to width runes.
func padKey(b []byte, key string, width int) []byte {
	b = append(b, key...)
	for n := utf8.RuneCountInString(key); n < width; n++ {
		b = append(b, ' ')
	}
	return b
}

// rows wraps a level's entries as dmx.Items.
func rows(entries []Entry, sep string) []dmx.Item {
	items := make([]dmx.Item, len(entries))
	for i, e := range entries {
		items[i] = row{entry: e, sep: sep}
	}
	return items
}
