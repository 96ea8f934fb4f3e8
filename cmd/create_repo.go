package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/modkit/internal/config"
	"github.com/papapumpkin/modkit/internal/course"
	"github.com/papapumpkin/modkit/internal/publish"
	"github.com/papapumpkin/modkit/internal/ui"
)

var createRepoCmd = &cobra.Command{
	Use:   "create-repo <dir>",
	Short: "Publish a module directory as its own GitHub repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		printer := ui.New()
		ctx, cancel := setupSignalContext(printer)
		defer cancel()

		p := newPublisher(cfg, newLogger(cfg))
		if err := p.CreateAndPush(ctx, args[0]); err != nil {
			printer.Error(err.Error())
			return err
		}
		printer.Published(fullName(cfg, args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createRepoCmd)
}

// newPublisher builds a Publisher from the loaded configuration.
func newPublisher(cfg config.Config, logger *log.Logger) *publish.Publisher {
	return &publish.Publisher{
		Org:     cfg.Org,
		Branch:  cfg.Branch,
		Token:   cfg.GitHubToken,
		GitPath: cfg.GitPath,
		GhPath:  cfg.GhPath,
		Runner:  &publish.ExecRunner{Logger: logger},
		GitHub:  publish.NewGitHubClient(publish.WithBaseURL(cfg.APIBaseURL)),
		Logger:  logger,
	}
}

func fullName(cfg config.Config, dir string) string {
	repo, err := course.RepoNameFor(dir)
	if err != nil {
		return dir
	}
	return cfg.Org + "/" + repo
}

// workingDir returns the process working directory.
func workingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
