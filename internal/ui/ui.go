package ui

import (
	"fmt"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) ModuleStart(dir string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ module"+reset+" %s\n", dir)
}

// StepDone reports one finished step of a module update; detail may be empty.
func (p *Printer) StepDone(step, detail string) {
	if detail == "" {
		fmt.Fprintf(os.Stderr, "  "+green+"✓"+reset+" %s\n", step)
		return
	}
	fmt.Fprintf(os.Stderr, "  "+green+"✓"+reset+" %s "+dim+"(%s)"+reset+"\n", step, detail)
}

func (p *Printer) StepSkipped(step, reason string) {
	fmt.Fprintf(os.Stderr, "  "+dim+"- %s (%s)"+reset+"\n", step, reason)
}

func (p *Printer) ModuleFailed(dir string, err error) {
	fmt.Fprintf(os.Stderr, red+bold+"✗ %s"+reset+": %v\n", dir, err)
}

func (p *Printer) UpdateSummary(done, failed int) {
	if failed == 0 {
		fmt.Fprintf(os.Stderr, green+bold+"✓ update complete"+reset+" (%d module(s))\n", done)
		return
	}
	fmt.Fprintf(os.Stderr, yellow+bold+"⚠ update finished with errors"+reset+": %d ok, %d failed\n", done, failed)
}

func (p *Printer) DiffSummary(changed []string) {
	if len(changed) == 0 {
		fmt.Fprintln(os.Stderr, dim+"no changes"+reset)
		return
	}
	fmt.Fprintf(os.Stderr, yellow+"~ %d file(s) would change"+reset+"\n", len(changed))
}

func (p *Printer) Published(full string) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ published"+reset+" %s\n", full)
}

func (p *Printer) CatalogWritten(path string, modules int) {
	fmt.Fprintf(os.Stderr, green+"✓ catalog"+reset+" %s "+dim+"(%d module(s))"+reset+"\n", path, modules)
}

func (p *Printer) Imported(src, dst string) {
	fmt.Fprintf(os.Stderr, green+"✓ imported"+reset+" %s → %s\n", src, dst)
}

func (p *Printer) Watching(dir string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ watching"+reset+" %s "+dim+"(ctrl-c to stop)"+reset+"\n", dir)
}

func (p *Printer) LaunchRegenerated(configs int) {
	fmt.Fprintf(os.Stderr, green+"✓ launch.json"+reset+dim+" %d configuration(s)"+reset+"\n", configs)
}

// Check prints the result of a dependency check.
func (p *Printer) Check(name string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, red+"✗ %s: "+reset+"%v\n", name, err)
		return
	}
	fmt.Fprintf(os.Stderr, green+"✓ %s"+reset+" found\n", name)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}
