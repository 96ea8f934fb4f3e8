package ide

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/papapumpkin/modkit/internal/javasrc"
)

// launchVersion is the schema version VS Code expects in launch.json.
const launchVersion = "0.2.0"

// DefaultDenylist names entry points that never get a launch configuration.
var DefaultDenylist = []string{"LeagueToken"}

// LaunchConfig is one VS Code Java run configuration.
type LaunchConfig struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Request   string `json:"request"`
	MainClass string `json:"mainClass"`
}

// LaunchSet is the content of launch.json.
type LaunchSet struct {
	Version        string         `json:"version"`
	Configurations []LaunchConfig `json:"configurations"`
}

// BuildLaunch returns one configuration per entry point whose class is not
// in denylist, sorted by name (byte order, so case-sensitive).
func BuildLaunch(entries []javasrc.EntryPoint, denylist []string) LaunchSet {
	configs := make([]LaunchConfig, 0, len(entries))
	for _, e := range entries {
		if slices.Contains(denylist, e.Class) {
			continue
		}
		configs = append(configs, LaunchConfig{
			Type:      "java",
			Name:      e.Class,
			Request:   "launch",
			MainClass: e.FQN,
		})
	}
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})
	return LaunchSet{Version: launchVersion, Configurations: configs}
}

// RenderLaunch returns launch.json content. Unlike settings.json it has no
// trailing newline, matching the launch files already in course modules.
func RenderLaunch(set LaunchSet) ([]byte, error) {
	if set.Configurations == nil {
		set.Configurations = []LaunchConfig{}
	}
	data, err := marshalIndent(set)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(data, []byte("\n")), nil
}

// EntryPoints collects the entry points under dir. Files whose package
// cannot be derived are logged and skipped; any other error stops the scan.
func EntryPoints(dir string, logger *log.Logger) ([]javasrc.EntryPoint, error) {
	var entries []javasrc.EntryPoint
	for ep, err := range javasrc.Scan(dir) {
		if err != nil {
			if errors.Is(err, javasrc.ErrNoPackage) {
				if logger != nil {
					logger.Warn("skipping entry point", "err", err)
				}
				continue
			}
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		entries = append(entries, ep)
	}
	return entries, nil
}

// WriteLaunch scans dir for entry points and overwrites
// dir/.vscode/launch.json with their configurations.
func WriteLaunch(sink Sink, dir string, denylist []string, logger *log.Logger) (LaunchSet, error) {
	entries, err := EntryPoints(dir, logger)
	if err != nil {
		return LaunchSet{}, err
	}
	set := BuildLaunch(entries, denylist)
	data, err := RenderLaunch(set)
	if err != nil {
		return LaunchSet{}, err
	}
	if err := sink.WriteFile(filepath.Join(dir, filepath.FromSlash(LaunchFile)), data); err != nil {
		return LaunchSet{}, err
	}
	return set, nil
}
