package dmx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const fullConfig = `dmenu     = "/usr/bin/dmenu"
font      = "Terminus-12"
normal_bg = "#88cccc"
normal_fg = "#422"
select_bg = "#422"
select_fg = "#88cccc"
`

func TestFromBytesFull(t *testing.T) {
	d, err := FromBytes([]byte(fullConfig))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	if d.Dmenu != "/usr/bin/dmenu" {
		t.Errorf("Dmenu = %q, want %q", d.Dmenu, "/usr/bin/dmenu")
	}
	if d.Font != "Terminus-12" {
		t.Errorf("Font = %q, want %q", d.Font, "Terminus-12")
	}
	if d.NormalBG != "#88cccc" || d.NormalFG != "#422" {
		t.Errorf("normal colors = %q/%q, want #88cccc/#422", d.NormalBG, d.NormalFG)
	}
	if d.SelectBG != "#422" || d.SelectFG != "#88cccc" {
		t.Errorf("select colors = %q/%q, want #422/#88cccc", d.SelectBG, d.SelectFG)
	}
}

func TestFromBytesPartial(t *testing.T) {
	d, err := FromBytes([]byte("font = \"Terminus-12\"\n"))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	if d.Font != "Terminus-12" {
		t.Errorf("Font = %q, want the override", d.Font)
	}
	// Absent fields inherit defaults; nothing is left unset.
	def := Default()
	if d.Dmenu != def.Dmenu || d.NormalBG != def.NormalBG || d.SelectFG != def.SelectFG {
		t.Errorf("absent fields did not inherit defaults: %+v", d)
	}
}

func TestFromBytesEmpty(t *testing.T) {
	d, err := FromBytes(nil)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if *d != *Default() {
		t.Errorf("FromBytes(nil) = %+v, want defaults", d)
	}
}

func TestFromBytesUnknownFieldsIgnored(t *testing.T) {
	d, err := FromBytes([]byte("wibble = 3\nfont = \"Fixed-9\"\n"))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if d.Font != "Fixed-9" {
		t.Errorf("Font = %q, want %q", d.Font, "Fixed-9")
	}
}

func TestFromBytesMalformed(t *testing.T) {
	_, err := FromBytes([]byte("dmenu = [unclosed"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("FromBytes() error = %v, want *ParseError", err)
	}
}

func TestMergeDoesNotMutate(t *testing.T) {
	base := Default()
	font := "Terminus-12"
	merged := base.Merge(File{Font: &font})

	if merged.Font != font {
		t.Errorf("merged Font = %q, want %q", merged.Font, font)
	}
	if base.Font == font {
		t.Error("Merge mutated the base configuration")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmx.toml")
	if err := os.WriteFile(path, []byte(fullConfig), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if d.Font != "Terminus-12" {
		t.Errorf("Font = %q, want %q", d.Font, "Terminus-12")
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.toml"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("FromFile() error = %v, want *ParseError", err)
	}
	if parseErr.Path == "" {
		t.Error("ParseError.Path is empty for a file source")
	}
}

func TestAutoConfigExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("font = \"Terminus-12\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfig, path)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	if d := AutoConfig(); d.Font != "Terminus-12" {
		t.Errorf("Font = %q, want the $DMX_CONFIG override", d.Font)
	}
}

func TestAutoConfigFallsThroughToXDG(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigName), []byte("font = \"Fixed-9\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Unreadable explicit candidate is swallowed, not surfaced.
	t.Setenv(EnvConfig, filepath.Join(dir, "missing.toml"))
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", "")

	if d := AutoConfig(); d.Font != "Fixed-9" {
		t.Errorf("Font = %q, want the XDG candidate", d.Font)
	}
}

func TestAutoConfigHome(t *testing.T) {
	home := t.TempDir()
	confDir := filepath.Join(home, ".config")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, ConfigName), []byte("dmenu = \"/opt/dmenu\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	if d := AutoConfig(); d.Dmenu != "/opt/dmenu" {
		t.Errorf("Dmenu = %q, want the $HOME candidate", d.Dmenu)
	}
}

func TestAutoConfigDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", t.TempDir())

	if d := AutoConfig(); *d != *Default() {
		t.Errorf("AutoConfig() = %+v, want defaults when no candidate exists", d)
	}
}

func TestAutoConfigMalformedCandidateSwallowed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigName), []byte("dmenu = [bad"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", "")

	if d := AutoConfig(); *d != *Default() {
		t.Errorf("AutoConfig() = %+v, want defaults after malformed candidate", d)
	}
}
