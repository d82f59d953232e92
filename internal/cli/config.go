package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved picker configuration",
	Long: `Prints the picker configuration after resolution, in the same TOML
shape the configuration file uses, so the output can seed a new
~/.config/dmx.toml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	d, err := loadPicker()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dmenu     = %q\n", d.Dmenu)
	fmt.Fprintf(out, "font      = %q\n", d.Font)
	fmt.Fprintf(out, "normal_bg = %q\n", d.NormalBG)
	fmt.Fprintf(out, "normal_fg = %q\n", d.NormalFG)
	fmt.Fprintf(out, "select_bg = %q\n", d.SelectBG)
	fmt.Fprintf(out, "select_fg = %q\n", d.SelectFG)
	return nil
}
