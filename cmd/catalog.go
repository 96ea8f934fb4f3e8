package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/catalog"
	"github.com/papapumpkin/modkit/internal/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <root>",
	Short: "Write a TOML inventory of the modules under a course root",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().String("out", "", "output file (default <root>/"+catalog.DefaultFile+")")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := ui.New()
	root := args[0]

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(root, catalog.DefaultFile)
	}

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	cat, err := catalog.Scan(ctx, root, cfg.ModulePrefix, cfg.Denylist)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if err := catalog.Save(out, cat); err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.CatalogWritten(out, len(cat.Modules))
	return nil
}
