package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/ui"
)

var markTemplateCmd = &cobra.Command{
	Use:   "mark-template [dir]",
	Short: "Flag a module's repository as a GitHub template",
	Long: "mark-template derives <Level>-<Module> from the directory (default: the " +
		"current one) and sets is_template on that repository. GITHUB_TOKEN must be set.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		printer := ui.New()
		ctx, cancel := setupSignalContext(printer)
		defer cancel()

		if err := newPublisher(cfg, newLogger(cfg)).MarkTemplate(ctx, dir); err != nil {
			printer.Error(err.Error())
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markTemplateCmd)
}
