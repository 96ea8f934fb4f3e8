package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/ui"
)

var mrtCmd = &cobra.Command{
	Use:   "mrt",
	Short: "Publish the current module and mark it as a template repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir, err := workingDir()
		if err != nil {
			return err
		}
		printer := ui.New()
		ctx, cancel := setupSignalContext(printer)
		defer cancel()

		p := newPublisher(cfg, newLogger(cfg))
		if err := p.CreateAndPush(ctx, dir); err != nil {
			printer.Error(err.Error())
			return err
		}
		printer.Published(fullName(cfg, dir))

		if err := p.MarkTemplate(ctx, dir); err != nil {
			printer.Error(err.Error())
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mrtCmd)
}
