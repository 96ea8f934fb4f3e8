package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/ide"
	"github.com/papapumpkin/modkit/internal/scaffold"
	"github.com/papapumpkin/modkit/internal/ui"
	"github.com/papapumpkin/modkit/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <module>",
	Short: "Regenerate launch.json whenever the module's Java sources change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := ui.New()
	logger := newLogger(cfg)
	dir := args[0]

	regenerate := func(batch watch.Batch) error {
		logger.Debug("sources changed", "files", batch.Files)
		set, err := ide.WriteLaunch(ide.DiskSink{}, dir, cfg.Denylist, logger)
		if err != nil {
			return err
		}
		printer.LaunchRegenerated(len(set.Configurations))
		return nil
	}

	// Start from a launch.json that matches the current sources.
	if err := regenerate(watch.Batch{}); err != nil {
		printer.Error(err.Error())
		return err
	}

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	src := filepath.Join(dir, scaffold.SrcDir)
	printer.Watching(src)
	return watch.Run(ctx, src, logger, regenerate)
}
