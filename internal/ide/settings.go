package ide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Generated file locations relative to the module root.
const (
	SettingsFile  = ".vscode/settings.json"
	LaunchFile    = ".vscode/launch.json"
	GitignoreFile = ".gitignore"
)

// Settings is the subset of VS Code Java settings a module pins.
type Settings struct {
	SourcePaths         []string `json:"java.project.sourcePaths"`
	OutputPath          string   `json:"java.project.outputPath"`
	ReferencedLibraries []string `json:"java.project.referencedLibraries"`
}

// DefaultSettings matches the layout MakeDirs creates.
var DefaultSettings = Settings{
	SourcePaths:         []string{"images", "src"},
	OutputPath:          "bin",
	ReferencedLibraries: []string{"lib/**/*.jar"},
}

// gitignore keeps compiled output out of the repository but keeps bin/.
const gitignore = `*.class
bin/*
!bin/.keep
.DS_Store
`

// RenderSettings returns settings.json content.
func RenderSettings() ([]byte, error) {
	return marshalIndent(DefaultSettings)
}

// WriteSettings writes dir/.vscode/settings.json.
func WriteSettings(sink Sink, dir string) error {
	data, err := RenderSettings()
	if err != nil {
		return err
	}
	return sink.WriteFile(filepath.Join(dir, filepath.FromSlash(SettingsFile)), data)
}

// RenderGitignore returns .gitignore content.
func RenderGitignore() []byte {
	return []byte(gitignore)
}

// WriteGitignore writes dir/.gitignore.
func WriteGitignore(sink Sink, dir string) error {
	return sink.WriteFile(filepath.Join(dir, GitignoreFile), RenderGitignore())
}

// marshalIndent encodes v as 4-space indented JSON with a trailing newline
// and without HTML escaping, so globs and class names stay readable.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}
