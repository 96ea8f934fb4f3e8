package ide

import (
	"encoding/xml"
	"path/filepath"
	"strings"

	"github.com/papapumpkin/modkit/internal/scaffold"
)

// ClasspathFile is the Eclipse classpath descriptor at the module root.
const ClasspathFile = ".classpath"

// RenderClasspath returns the classpath descriptor for a module whose lib/
// holds jars. Source roots are src and images; output goes to bin.
//
// The layout is byte-for-byte the one existing course modules already carry:
// a blank line before the closing tag and no trailing newline.
func RenderClasspath(jars []string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<classpath>\n")
	b.WriteString(`    <classpathentry kind="src" path="src"/>` + "\n")
	b.WriteString(`    <classpathentry kind="src" path="images"/>` + "\n")
	b.WriteString(`    <classpathentry kind="output" path="bin"/>` + "\n")
	for _, jar := range jars {
		b.WriteString(`    <classpathentry kind="lib" path="lib/`)
		_ = xml.EscapeText(&b, []byte(jar)) // strings.Builder never fails
		b.WriteString(`"/>` + "\n")
	}
	b.WriteString("\n</classpath>")
	return []byte(b.String())
}

// WriteClasspath writes dir/.classpath from the lib manifest. Without a
// manifest nothing is written and it reports false.
func WriteClasspath(sink Sink, dir string) (bool, error) {
	jars, ok, err := scaffold.ReadManifest(dir)
	if err != nil || !ok {
		return false, err
	}
	if err := sink.WriteFile(filepath.Join(dir, ClasspathFile), RenderClasspath(jars)); err != nil {
		return false, err
	}
	return true, nil
}
