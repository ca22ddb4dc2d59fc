// File: filex_test.go
// Title: File Operation Tests
// Description: Tests for touch, write, rewrite, copy, directories, deletion
//              and the atomic writer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setupTestDir creates a temporary directory with test files
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(tmpDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", path, err)
		}
	}
	return tmpDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestExistsAndIsDir(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{"test.txt": "x"})

	testCases := []struct {
		name   string
		path   string
		exists bool
		isDir  bool
		isFile bool
	}{
		{"existing file", filepath.Join(tmpDir, "test.txt"), true, false, true},
		{"existing directory", tmpDir, true, true, false},
		{"missing path", filepath.Join(tmpDir, "missing.txt"), false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Exists(tc.path); got != tc.exists {
				t.Errorf("Exists() = %v, want %v", got, tc.exists)
			}
			if got := IsDir(tc.path); got != tc.isDir {
				t.Errorf("IsDir() = %v, want %v", got, tc.isDir)
			}
			if got := IsFile(tc.path); got != tc.isFile {
				t.Errorf("IsFile() = %v, want %v", got, tc.isFile)
			}
		})
	}
}

func TestTouch(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{"keep.txt": "content\n"})

	t.Run("creates missing file and parents", func(t *testing.T) {
		path := filepath.Join(tmpDir, "a", "b", "new.txt")
		if err := Touch(path); err != nil {
			t.Fatalf("Touch() error = %v", err)
		}
		if got := readFile(t, path); got != "" {
			t.Errorf("new file content = %q", got)
		}
	})

	t.Run("keeps content and bumps mtime", func(t *testing.T) {
		path := filepath.Join(tmpDir, "keep.txt")
		past := time.Now().Add(-time.Hour)
		if err := os.Chtimes(path, past, past); err != nil {
			t.Fatal(err)
		}
		if err := Touch(path); err != nil {
			t.Fatalf("Touch() error = %v", err)
		}
		if got := readFile(t, path); got != "content\n" {
			t.Errorf("content changed to %q", got)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if !info.ModTime().After(past) {
			t.Errorf("mtime not updated: %v", info.ModTime())
		}
	})
}

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "apps", "web", "action.rb")

	if err := Write(path, "class Index\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := Write(path, "  def call\n", "  end\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got, want := readFile(t, path), "class Index\n  def call\n  end\n"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestRewrite(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{"routes.rb": "old\n"})
	path := filepath.Join(tmpDir, "routes.rb")
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatal(err)
	}

	if err := Rewrite(path, "new\n"); err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got := readFile(t, path); got != "new\n" {
		t.Errorf("content = %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}

	err = Rewrite(filepath.Join(tmpDir, "missing.rb"), "x")
	if !IsFileNotFound(err) {
		t.Errorf("Rewrite() of missing file error = %v", err)
	}
	if Exists(filepath.Join(tmpDir, "missing.rb")) {
		t.Error("Rewrite() must not create a missing file")
	}
}

func TestCopy(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{"src.sh": "#!/bin/sh\n"})
	src := filepath.Join(tmpDir, "src.sh")
	if err := os.Chmod(src, 0755); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(tmpDir, "bin", "nested", "dst.sh")

	if err := Copy(src, dst); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if got := readFile(t, dst); got != "#!/bin/sh\n" {
		t.Errorf("content = %q", got)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}

	if err := Copy(filepath.Join(tmpDir, "missing"), dst); !IsFileNotFound(err) {
		t.Errorf("Copy() of missing source error = %v", err)
	}
}

func TestDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	literal := filepath.Join(tmpDir, "a", "b.rb")
	if err := MakeDirectory(literal); err != nil {
		t.Fatalf("MakeDirectory() error = %v", err)
	}
	if !IsDir(literal) {
		t.Error("MakeDirectory() should create b.rb as a directory")
	}

	file := filepath.Join(tmpDir, "x", "y", "z.rb")
	if err := MakeParentDirectories(file); err != nil {
		t.Fatalf("MakeParentDirectories() error = %v", err)
	}
	if !IsDir(filepath.Dir(file)) || Exists(file) {
		t.Error("MakeParentDirectories() should create only the parent")
	}

	if err := MakeDirectory(literal); err != nil {
		t.Errorf("MakeDirectory() should be idempotent: %v", err)
	}
}

func TestDelete(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{
		"file.txt":         "x",
		"dir/nested/a.txt": "y",
	})

	if err := Delete(filepath.Join(tmpDir, "file.txt")); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if Exists(filepath.Join(tmpDir, "file.txt")) {
		t.Error("file still exists")
	}
	if err := Delete(filepath.Join(tmpDir, "file.txt")); !IsFileNotFound(err) {
		t.Errorf("second Delete() error = %v", err)
	}

	if err := DeleteDirectory(filepath.Join(tmpDir, "dir")); err != nil {
		t.Fatalf("DeleteDirectory() error = %v", err)
	}
	if Exists(filepath.Join(tmpDir, "dir")) {
		t.Error("directory still exists")
	}
	if err := DeleteDirectory(filepath.Join(tmpDir, "dir")); !IsFileNotFound(err) {
		t.Errorf("second DeleteDirectory() error = %v", err)
	}
}

func TestEditorFileMode(t *testing.T) {
	tmpDir := t.TempDir()
	e := NewEditor(WithFileMode(0600))
	path := filepath.Join(tmpDir, "secret.txt")

	if err := e.Write(path, "token\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
	if e.FileMode() != 0600 {
		t.Errorf("FileMode() = %v", e.FileMode())
	}
}

func TestErrorsCarryPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := ReadLines(path)
	if !IsFileNotFound(err) {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestWriteThroughSymlink(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{"real/notes.txt": "a\nb\n"})
	dest := filepath.Join(tmpDir, "real", "notes.txt")
	link := filepath.Join(tmpDir, "notes.txt")
	if err := os.Symlink(dest, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	steps := []struct {
		name string
		run  func() error
		want string
	}{
		{"AppendLine", func() error { return AppendLine(link, "c") }, "a\nb\nc\n"},
		{"InsertLineAfter", func() error { return InsertLineAfter(link, Contains("a"), "a2") }, "a\na2\nb\nc\n"},
		{"Write", func() error { return Write(link, "d\n") }, "a\na2\nb\nc\nd\n"},
		{"Rewrite", func() error { return Rewrite(link, "x\n") }, "x\n"},
	}

	for _, st := range steps {
		if err := st.run(); err != nil {
			t.Fatalf("%s() error = %v", st.name, err)
		}
		info, err := os.Lstat(link)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			t.Fatalf("%s() replaced the symlink with a regular file", st.name)
		}
		if got := readFile(t, dest); got != st.want {
			t.Errorf("%s() target = %q, want %q", st.name, got, st.want)
		}
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "real"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestCopyOntoSymlink(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{"src.txt": "new\n", "real/dst.txt": "old\n"})
	dest := filepath.Join(tmpDir, "real", "dst.txt")
	link := filepath.Join(tmpDir, "dst.txt")
	if err := os.Symlink(dest, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := Copy(filepath.Join(tmpDir, "src.txt"), link); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if got := readFile(t, dest); got != "new\n" {
		t.Errorf("target = %q, want %q", got, "new\n")
	}
}
