// File: filex.go
// Title: File Operations
// Description: Whole-file operations of the editor (touch, write, rewrite,
//              copy, directories, deletion), the atomic writer and the
//              package level functions backed by the default editor.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-17 v0.2.0: Atomic writes, editor methods, missing path errors
// - 2026-10-17 v0.2.1: Writes through symlinks edit the link target

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/textkit/foundation/core/log"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Touch creates path with its parent directories when missing and updates
// the modification time otherwise. Existing content is kept.
func (e *Editor) Touch(path string) error {
	if err := e.MakeParentDirectories(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, e.fileMode)
	if err != nil {
		return ioError("Touch", path, err, "failed to create file")
	}
	if err := f.Close(); err != nil {
		return ioError("Touch", path, err, "failed to close file")
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return ioError("Touch", path, err, "failed to update modification time")
	}
	e.logger.Debug("file touched", log.String("path", path))
	return nil
}

// Write creates path with its parent directories when missing and appends
// content to it.
func (e *Editor) Write(path string, content ...string) error {
	if err := e.MakeParentDirectories(path); err != nil {
		return err
	}
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return ioError("Write", path, err, "failed to read file")
	}
	data := append(existing, strings.Join(content, "")...)
	if err := e.writeAtomic("Write", path, data); err != nil {
		return err
	}
	e.logger.Debug("file written", log.String("path", path), log.Int("bytes", len(data)))
	return nil
}

// Rewrite replaces the content of an existing file.
func (e *Editor) Rewrite(path string, content ...string) error {
	if !IsFile(path) {
		return fileNotFound("Rewrite", path, nil)
	}
	data := []byte(strings.Join(content, ""))
	if err := e.writeAtomic("Rewrite", path, data); err != nil {
		return err
	}
	e.logger.Debug("file rewritten", log.String("path", path), log.Int("bytes", len(data)))
	return nil
}

// Copy copies src to dst, creating the parent directories of dst and keeping
// the mode of src.
func (e *Editor) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return ioError("Copy", src, err, "failed to stat source")
	}
	if info.IsDir() {
		return fileNotFound("Copy", src, nil)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return ioError("Copy", src, err, "failed to read source")
	}
	if err := e.MakeParentDirectories(dst); err != nil {
		return err
	}
	if err := e.writeFile("Copy", dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	e.logger.Debug("file copied", log.String("source", src), log.String("destination", dst))
	return nil
}

// MakeDirectory creates path and all missing parents. The full path is
// treated as a directory, even when it looks like a file name.
func (e *Editor) MakeDirectory(path string) error {
	if err := os.MkdirAll(path, e.dirMode); err != nil {
		return ioError("MakeDirectory", path, err, "failed to create directory")
	}
	return nil
}

// MakeParentDirectories creates the directory that will contain path.
func (e *Editor) MakeParentDirectories(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, e.dirMode); err != nil {
		return ioError("MakeParentDirectories", dir, err, "failed to create directory")
	}
	return nil
}

// Delete removes a file.
func (e *Editor) Delete(path string) error {
	if !Exists(path) {
		return fileNotFound("Delete", path, nil)
	}
	if err := os.Remove(path); err != nil {
		return ioError("Delete", path, err, "failed to delete file")
	}
	e.logger.Debug("file deleted", log.String("path", path))
	return nil
}

// DeleteDirectory removes a directory and everything below it.
func (e *Editor) DeleteDirectory(path string) error {
	if !IsDir(path) {
		return fileNotFound("DeleteDirectory", path, nil)
	}
	if err := os.RemoveAll(path); err != nil {
		return ioError("DeleteDirectory", path, err, "failed to delete directory")
	}
	e.logger.Debug("directory deleted", log.String("path", path))
	return nil
}

// writeAtomic replaces path with data, keeping the mode of an existing file.
func (e *Editor) writeAtomic(op, path string, data []byte) error {
	mode := e.fileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return e.writeFile(op, path, data, mode)
}

// writeFile writes data to a temporary file next to path and renames it into
// place so readers never see a partial file. A symlinked path is resolved
// first; the link stays and its target receives the content.
func (e *Editor) writeFile(op, path string, data []byte, mode os.FileMode) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	dir, base := filepath.Split(target)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return ioError(op, path, err, "failed to create temporary file")
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return ioError(op, path, err, "failed to write temporary file")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return ioError(op, path, err, "failed to close temporary file")
	}
	// O_CREATE honours the umask; set the mode explicitly.
	if err := os.Chmod(tmp, mode); err != nil {
		os.Remove(tmp)
		return ioError(op, path, err, "failed to set file mode")
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return ioError(op, path, err, "failed to replace file")
	}
	return nil
}

var defaultEditor = NewEditor()

// Default returns the editor used by the package functions.
func Default() *Editor { return defaultEditor }

// Touch creates or touches path with the default editor.
func Touch(path string) error { return defaultEditor.Touch(path) }

// Write creates or appends to path with the default editor.
func Write(path string, content ...string) error { return defaultEditor.Write(path, content...) }

// Rewrite replaces the content of path with the default editor.
func Rewrite(path string, content ...string) error { return defaultEditor.Rewrite(path, content...) }

// Copy copies src to dst with the default editor.
func Copy(src, dst string) error { return defaultEditor.Copy(src, dst) }

// MakeDirectory creates a directory tree with the default editor.
func MakeDirectory(path string) error { return defaultEditor.MakeDirectory(path) }

// MakeParentDirectories creates the parent directories of path.
func MakeParentDirectories(path string) error { return defaultEditor.MakeParentDirectories(path) }

// Delete removes a file with the default editor.
func Delete(path string) error { return defaultEditor.Delete(path) }

// DeleteDirectory removes a directory tree with the default editor.
func DeleteDirectory(path string) error { return defaultEditor.DeleteDirectory(path) }

// ReadLines reads path into Lines.
func ReadLines(path string) (Lines, error) { return defaultEditor.ReadLines(path) }

// PrependLine adds line at the top of path.
func PrependLine(path, line string) error { return defaultEditor.PrependLine(path, line) }

// AppendLine adds line at the end of path.
func AppendLine(path, line string) error { return defaultEditor.AppendLine(path, line) }

// ReplaceFirstLine replaces the first line of path matching target.
func ReplaceFirstLine(path string, target Target, replacement string) error {
	return defaultEditor.ReplaceFirstLine(path, target, replacement)
}

// ReplaceLastLine replaces the last line of path matching target.
func ReplaceLastLine(path string, target Target, replacement string) error {
	return defaultEditor.ReplaceLastLine(path, target, replacement)
}

// InsertLineBefore inserts line before the first line matching target.
func InsertLineBefore(path string, target Target, line string) error {
	return defaultEditor.InsertLineBefore(path, target, line)
}

// InsertLineAfter inserts line after the first line matching target.
func InsertLineAfter(path string, target Target, line string) error {
	return defaultEditor.InsertLineAfter(path, target, line)
}

// InsertLineBeforeLast inserts line before the last line matching target.
func InsertLineBeforeLast(path string, target Target, line string) error {
	return defaultEditor.InsertLineBeforeLast(path, target, line)
}

// InsertLineAfterLast inserts line after the last line matching target.
func InsertLineAfterLast(path string, target Target, line string) error {
	return defaultEditor.InsertLineAfterLast(path, target, line)
}

// RemoveLine removes the first line matching target.
func RemoveLine(path string, target Target) error {
	return defaultEditor.RemoveLine(path, target)
}

// RemoveBlock removes every block opening on a line matching target.
func RemoveBlock(path string, target Target) error {
	return defaultEditor.RemoveBlock(path, target)
}
