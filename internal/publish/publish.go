// Package publish turns a module directory into its own GitHub repository:
// it initializes and commits locally with git, creates the remote with the
// gh CLI, force-pushes, and can flag the repository as a template.
package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/papapumpkin/modkit/internal/course"
)

// Defaults for Publisher fields left empty.
const (
	DefaultOrg    = "League-Java"
	DefaultBranch = "master"
)

// initialCommitMessage is used for the first commit of a fresh repository.
const initialCommitMessage = "Initial commit"

// Publisher creates and configures module repositories. Everything it needs
// is passed in; it reads no environment variables and never changes the
// process working directory.
type Publisher struct {
	Org     string // GitHub organization owning the repositories
	Branch  string // branch pushed to origin
	Token   string // API token for MarkTemplate
	GitPath string
	GhPath  string

	Runner Runner
	GitHub *GitHubClient
	Logger *log.Logger
}

func (p *Publisher) org() string {
	if p.Org == "" {
		return DefaultOrg
	}
	return p.Org
}

func (p *Publisher) branch() string {
	if p.Branch == "" {
		return DefaultBranch
	}
	return p.Branch
}

func (p *Publisher) git() string {
	if p.GitPath == "" {
		return "git"
	}
	return p.GitPath
}

func (p *Publisher) gh() string {
	if p.GhPath == "" {
		return "gh"
	}
	return p.GhPath
}

func (p *Publisher) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}

// CreateAndPush publishes dir as <org>/<repo>. A directory without .git is
// initialized and committed first. The remote repository is created unless it
// already exists, and the local history is force-pushed with upstream
// tracking.
func (p *Publisher) CreateAndPush(ctx context.Context, dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	repo, err := course.RepoNameFor(abs)
	if err != nil {
		return err
	}
	full := p.org() + "/" + repo

	if _, err := os.Stat(filepath.Join(abs, ".git")); os.IsNotExist(err) {
		p.logger().Info("creating local repo", "repo", repo)
		for _, args := range [][]string{
			{"init"},
			{"add", "-A"},
			{"commit", "-a", "-m", initialCommitMessage},
		} {
			if _, err := p.Runner.Run(ctx, abs, p.git(), args...); err != nil {
				return err
			}
		}
	} else if err != nil {
		return fmt.Errorf("stat .git: %w", err)
	}

	p.logger().Info("creating remote repo", "repo", full)
	if _, err := p.Runner.Run(ctx, abs, p.gh(), buildRepoCreateArgs(full)...); err != nil {
		if !isAlreadyExists(err) {
			return fmt.Errorf("creating %s: %w", full, err)
		}
		p.logger().Warn("remote repo already exists", "repo", full)
	}

	if err := p.ensureOrigin(ctx, abs, full); err != nil {
		return err
	}

	p.logger().Info("pushing", "repo", full, "branch", p.branch())
	if _, err := p.Runner.Run(ctx, abs, p.git(), buildPushArgs(p.branch())...); err != nil {
		return fmt.Errorf("pushing %s: %w", full, err)
	}
	return nil
}

// ensureOrigin adds the origin remote when gh did not set it, which happens
// when the repository already existed.
func (p *Publisher) ensureOrigin(ctx context.Context, dir, full string) error {
	if _, err := p.Runner.Run(ctx, dir, p.git(), "remote", "get-url", "origin"); err == nil {
		return nil
	}
	url := "https://github.com/" + full + ".git"
	p.logger().Debug("adding origin", "url", url)
	if _, err := p.Runner.Run(ctx, dir, p.git(), "remote", "add", "origin", url); err != nil {
		return fmt.Errorf("adding origin: %w", err)
	}
	return nil
}

// MarkTemplate flags the Level-Module repository for dir as a template.
// dir must sit in a Level/Module pair and a token must be configured; both
// are checked before any request is made. A non-200 reply is logged, not
// returned.
func (p *Publisher) MarkTemplate(ctx context.Context, dir string) error {
	id, err := course.ParseModuleID(dir)
	if err != nil {
		return err
	}
	if p.Token == "" {
		return ErrMissingToken
	}

	client := p.GitHub
	if client == nil {
		client = NewGitHubClient()
	}
	repo := id.RepoName()
	resp, err := client.SetTemplate(ctx, p.org(), repo, p.Token)
	if err != nil {
		return err
	}
	if !resp.OK() {
		p.logger().Error("failed to turn the repository into a template",
			"repo", repo, "status", resp.StatusCode, "response", resp.Body)
		return nil
	}
	p.logger().Info("repository is now a template", "repo", p.org()+"/"+repo)
	return nil
}

// Tools returns the git and gh binaries the publisher runs.
func (p *Publisher) Tools() []string {
	return []string{p.git(), p.gh()}
}

// Validate checks that the git and gh binaries can be found.
func (p *Publisher) Validate() error {
	var errs []error
	for _, bin := range p.Tools() {
		errs = append(errs, LookupTool(bin))
	}
	return errors.Join(errs...)
}

// LookupTool reports whether bin can be found in PATH.
func LookupTool(bin string) error {
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%s CLI not found: %w", bin, err)
	}
	return nil
}

func buildRepoCreateArgs(full string) []string {
	return []string{"repo", "create", full, "--public", "-s", "."}
}

func buildPushArgs(branch string) []string {
	return []string{"push", "-f", "--set-upstream", "origin", branch}
}

// isAlreadyExists reports whether a gh failure says the repository exists.
func isAlreadyExists(err error) bool {
	var ce *CommandError
	if errors.As(err, &ce) {
		return strings.Contains(strings.ToLower(ce.Stderr), "already exists")
	}
	return false
}
