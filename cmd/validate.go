package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/publish"
	"github.com/papapumpkin/modkit/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that required dependencies are available",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		printer := ui.New()
		ok := true

		for _, bin := range newPublisher(cfg, newLogger(cfg)).Tools() {
			err := publish.LookupTool(bin)
			printer.Check(bin, err)
			if err != nil {
				ok = false
			}
		}

		if cfg.GitHubToken == "" {
			printer.Check("GITHUB_TOKEN", publish.ErrMissingToken)
			ok = false
		} else {
			printer.Check("GITHUB_TOKEN", nil)
		}

		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
