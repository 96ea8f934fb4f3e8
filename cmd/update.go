package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/ui"
	"github.com/papapumpkin/modkit/internal/update"
)

var updateCmd = &cobra.Command{
	Use:   "update <root>",
	Short: "Bring every module under a course root up to date",
	Long: "update creates the standard directories of every module, gathers its jars " +
		"into lib/, regenerates the editor configuration, and copies the shared " +
		".devcontainer and scripts trees into it.",
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Bool("diff", false, "print the editor configuration changes without writing anything")
	updateCmd.Flags().Bool("keep-going", false, "continue past failing modules and report them all at the end")
	updateCmd.Flags().String("templates", "", "directory holding .devcontainer and scripts (default from config)")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := ui.New()
	logger := newLogger(cfg)

	opts := update.Options{
		ModulePrefix: cfg.ModulePrefix,
		TemplatesDir: cfg.TemplatesDir,
		Denylist:     cfg.Denylist,
	}
	if v, _ := cmd.Flags().GetString("templates"); v != "" {
		opts.TemplatesDir = v
	}
	opts.KeepGoing, _ = cmd.Flags().GetBool("keep-going")
	if diff, _ := cmd.Flags().GetBool("diff"); diff {
		opts.DiffOut = os.Stdout
	}

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	u := &update.Updater{Options: opts, Reporter: printer, Logger: logger}
	res, err := u.Run(ctx, args[0])
	if opts.DiffOut != nil {
		printer.DiffSummary(res.Changed)
	} else {
		printer.UpdateSummary(len(res.Updated), len(res.Failed))
	}
	return err
}
