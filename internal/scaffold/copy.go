package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Shared trees copied from the templates root into every module.
const (
	DevcontainerDir = ".devcontainer"
	ScriptsDir      = "scripts"
)

// TemplateDirs lists the trees CopyTemplates copies, in order.
var TemplateDirs = []string{DevcontainerDir, ScriptsDir}

// CopyTemplates copies each of TemplateDirs from templatesRoot into dir.
func CopyTemplates(dir, templatesRoot string) error {
	for _, name := range TemplateDirs {
		if err := CopyTemplate(filepath.Join(templatesRoot, name), filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// CopyTemplate copies the contents of src into dst, merging with whatever dst
// already holds: files from src overwrite their counterparts and anything
// else in dst is kept. src must be an existing directory.
func CopyTemplate(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, src)
		}
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrTemplateNotFound, src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(target, fi.Mode().Perm()|0o700); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			// Symlinks and special files are not part of a template.
			return nil
		}
		return copyFile(path, target)
	})
}

// copyFile copies src to dst, replacing dst and keeping src's permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	// OpenFile only applies the mode on create.
	return os.Chmod(dst, info.Mode().Perm())
}
