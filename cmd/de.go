package cmd

import (
	"github.com/spf13/cobra"
)

// deCmd is kept so existing scripts that call it keep working. It only
// resolves the working directory.
var deCmd = &cobra.Command{
	Use:    "de",
	Short:  "Resolve the current directory (no other effect)",
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir, err := workingDir()
		if err != nil {
			return err
		}
		newLogger(cfg).Debug("de", "dir", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deCmd)
}
