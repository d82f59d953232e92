// Package cli implements the dmx-launcher command tree.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kskskav/dmx"
	"github.com/kskskav/dmx/internal/errors"
	"github.com/kskskav/dmx/internal/launcher"
	"github.com/kskskav/dmx/internal/logging"
	"github.com/kskskav/dmx/internal/system"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
	menusDir   string
	separator  string
)

var rootCmd = &cobra.Command{
	Use:   "dmx-launcher <menu>",
	Short: "dmenu-driven hierarchical program launcher",
	Long: `dmx-launcher presents a hierarchical program menu through dmenu.

The menu argument is either a path to a menu file or the name of a menu
in the menus directory (default: ~/.config/dmx/menus). Menus are JSON
arrays of entries; an entry with an "exec" field launches a program,
one with an "items" field opens a nested menu. Cancelling a nested menu
returns to its parent; cancelling the top level exits.

Picker appearance is read from the dmx configuration file (see the
config subcommand) unless --config names one explicitly.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Picker configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&menusDir, "menus-dir", "", "Directory searched for named menus")
	rootCmd.Flags().StringVar(&separator, "separator", launcher.DefaultSeparator, "Submenu separator shown after category keys")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadPicker resolves the picker configuration: --config when given,
// otherwise the automatic probe chain.
func loadPicker() (*dmx.Dmx, error) {
	if configPath != "" {
		d, err := dmx.FromFile(configPath)
		if err != nil {
			return nil, errors.ConfigError("failed to load picker config", err)
		}
		return d, nil
	}
	return dmx.AutoConfig(), nil
}

// defaultMenusDir returns the conventional per-user menus directory.
func defaultMenusDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "dmx", "menus")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "dmx", "menus")
}

// loadMenu loads arg as a file path if it exists, otherwise as a named
// menu under the menus directory.
func loadMenu(arg string) (*launcher.Menu, error) {
	if system.DefaultFS().Exists(arg) {
		m, err := launcher.Load(arg)
		if err != nil {
			return nil, errors.MenuInvalid(arg, err)
		}
		return m, nil
	}

	dir := menusDir
	if dir == "" {
		dir = defaultMenusDir()
	}
	m, err := launcher.LoadNamed(dir, arg)
	if err != nil {
		return nil, errors.MenuNotFound(arg, err)
	}
	return m, nil
}

func runLaunch(cmd *cobra.Command, args []string) error {
	d, err := loadPicker()
	if err != nil {
		return err
	}

	menu, err := loadMenu(args[0])
	if err != nil {
		return err
	}
	menu.Separator = separator

	logging.Debug("menu loaded", "entries", len(menu.Entries), "separator", menu.Separator)

	prog, err := launcher.Choose(d, menu, "")
	if err != nil {
		return errors.SelectFailed(err)
	}
	if prog == nil {
		logging.UserInfo("Nothing selected")
		return nil
	}

	logging.Debug("launching", "key", prog.Key, "argv", prog.Exec)

	if err := launcher.Launch(prog); err != nil {
		return errors.LaunchFailed(prog.Key, err)
	}
	return nil // unreachable: a successful launch replaces the process
}
