// Package update brings every module under a course root up to date: the
// standard directories, relocated libraries, generated editor configuration,
// and the shared devcontainer and scripts trees.
package update

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"

	"github.com/papapumpkin/modkit/internal/course"
	"github.com/papapumpkin/modkit/internal/ide"
	"github.com/papapumpkin/modkit/internal/scaffold"
)

// Reporter receives progress for each module. *ui.Printer satisfies it.
type Reporter interface {
	ModuleStart(dir string)
	StepDone(step, detail string)
	StepSkipped(step, reason string)
	ModuleFailed(dir string, err error)
}

// Options controls an update run.
type Options struct {
	ModulePrefix string   // directory prefix identifying modules; empty means "Module"
	TemplatesDir string   // holds .devcontainer/ and scripts/; relative to the working directory
	Denylist     []string // classes never given a launch configuration

	// KeepGoing records a module's failure and moves on instead of stopping
	// the batch.
	KeepGoing bool

	// DiffOut, when set, switches to preview mode: only the editor
	// configuration is generated, as a unified diff written here.
	DiffOut io.Writer
}

// Result summarizes a run.
type Result struct {
	Updated []string // modules processed successfully, in walk order
	Failed  []string // modules that failed (KeepGoing only)
	Changed []string // files that would change (preview mode only)
}

// Updater runs the per-module steps over a course tree.
type Updater struct {
	Options  Options
	Reporter Reporter
	Logger   *log.Logger
}

// Run updates every module under root. Without KeepGoing the first module
// failure stops the run; with it, failures are aggregated into a
// *multierror.Error. Cancellation is checked between modules.
func (u *Updater) Run(ctx context.Context, root string) (Result, error) {
	var res Result
	var errs *multierror.Error

	var diff *ide.DiffSink
	if u.Options.DiffOut != nil {
		diff = ide.NewDiffSink(u.Options.DiffOut)
	}

	for dir, err := range course.Walk(root, u.Options.ModulePrefix) {
		if err != nil {
			return res, fmt.Errorf("walking %s: %w", root, err)
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		u.reporter().ModuleStart(dir)
		if diff != nil {
			err = u.Preview(dir, diff)
		} else {
			err = u.UpdateModule(dir)
		}
		if err != nil {
			u.reporter().ModuleFailed(dir, err)
			if !u.Options.KeepGoing {
				return res, fmt.Errorf("updating %s: %w", dir, err)
			}
			res.Failed = append(res.Failed, dir)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", dir, err))
			continue
		}
		res.Updated = append(res.Updated, dir)
	}

	if diff != nil {
		res.Changed = diff.Changed
	}
	return res, errs.ErrorOrNil()
}

// UpdateModule runs every step against a single module directory.
func (u *Updater) UpdateModule(dir string) error {
	r := u.reporter()

	created, err := scaffold.MakeDirs(dir)
	if err != nil {
		return err
	}
	r.StepDone("directories", countDetail(len(created), "created"))

	moved, err := scaffold.RelocateEclipse(dir)
	if err != nil {
		return err
	}
	if len(moved) > 0 {
		r.StepDone("eclipse files", countDetail(len(moved), "moved"))
	}

	jars, err := scaffold.RelocateLibraries(dir)
	if err != nil {
		return err
	}
	if len(jars) == 0 {
		r.StepSkipped("libraries", "no archives")
	} else {
		r.StepDone("libraries", countDetail(len(jars), "archive(s)"))
	}

	if err := u.writeConfig(dir, ide.DiskSink{}); err != nil {
		return err
	}

	templates, err := filepath.Abs(u.templatesDir())
	if err != nil {
		return fmt.Errorf("resolving templates dir: %w", err)
	}
	if err := scaffold.CopyTemplates(dir, templates); err != nil {
		return err
	}
	r.StepDone("templates", "")
	return nil
}

// Preview renders the editor configuration for dir into sink without
// touching the module.
func (u *Updater) Preview(dir string, sink ide.Sink) error {
	return u.writeConfig(dir, sink)
}

// writeConfig generates the classpath (manifest before classpath), settings,
// ignore rules, and launch configurations.
func (u *Updater) writeConfig(dir string, sink ide.Sink) error {
	r := u.reporter()

	wrote, err := ide.WriteClasspath(sink, dir)
	if err != nil {
		return err
	}
	if wrote {
		r.StepDone(ide.ClasspathFile, "")
	} else {
		r.StepSkipped(ide.ClasspathFile, "no manifest")
	}

	if err := ide.WriteSettings(sink, dir); err != nil {
		return err
	}
	r.StepDone(ide.SettingsFile, "")

	if err := ide.WriteGitignore(sink, dir); err != nil {
		return err
	}
	r.StepDone(ide.GitignoreFile, "")

	set, err := ide.WriteLaunch(sink, dir, u.Options.Denylist, u.Logger)
	if err != nil {
		return err
	}
	r.StepDone(ide.LaunchFile, countDetail(len(set.Configurations), "configuration(s)"))
	return nil
}

func (u *Updater) templatesDir() string {
	if u.Options.TemplatesDir == "" {
		return "."
	}
	return u.Options.TemplatesDir
}

func (u *Updater) reporter() Reporter {
	if u.Reporter == nil {
		return nopReporter{}
	}
	return u.Reporter
}

func countDetail(n int, what string) string {
	return strconv.Itoa(n) + " " + what
}

type nopReporter struct{}

func (nopReporter) ModuleStart(string)         {}
func (nopReporter) StepDone(string, string)    {}
func (nopReporter) StepSkipped(string, string) {}
func (nopReporter) ModuleFailed(string, error) {}
