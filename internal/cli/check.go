package cli

import (
	"github.com/spf13/cobra"

	"github.com/kskskav/dmx/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check <menu>",
	Short: "Validate a menu file",
	Long: `Loads and validates a menu without presenting it.

Reports parse errors, entries that are neither program nor submenu,
programs with empty commands, and empty submenus.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	menu, err := loadMenu(args[0])
	if err != nil {
		return err
	}

	programs, submenus := menu.Count()
	logging.UserSuccess("%s: %d entries at top level, %d programs, %d submenus",
		args[0], len(menu.Entries), programs, submenus)
	if programs == 0 {
		logging.UserWarning("Menu %s contains no launchable programs", args[0])
	}
	return nil
}
