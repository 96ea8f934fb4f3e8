package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/scaffold"
	"github.com/papapumpkin/modkit/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <flat-dir>... --into <base>",
	Short: "Copy flat Level-Module checkouts into a Level/Module tree",
	Long: "import copies each directory named <Level>-<Module> (for example a cloned " +
		"Level1-Module2 repository) to <base>/<Level>/<Module>. Existing destinations " +
		"are left alone and reported.",
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("into", ".", "course root receiving the modules")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	base, _ := cmd.Flags().GetString("into")

	var errs []error
	for _, src := range args {
		dst, err := scaffold.Import(src, base)
		if err != nil {
			printer.Error(err.Error())
			errs = append(errs, err)
			continue
		}
		printer.Imported(src, dst)
	}
	return errors.Join(errs...)
}
