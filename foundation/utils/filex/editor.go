// File: editor.go
// Title: Line Editor
// Description: Editor applies line operations to files: read, locate,
//              mutate in memory, write once.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package filex

import (
	"os"

	"github.com/msto63/textkit/foundation/core/log"
)

const (
	defaultFileMode os.FileMode = 0644
	defaultDirMode  os.FileMode = 0755
)

// Editor edits text files line by line.
type Editor struct {
	logger   *log.Logger
	closing  ClosingFunc
	fileMode os.FileMode
	dirMode  os.FileMode
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithLogger sets the logger used for debug output of every operation.
func WithLogger(logger *log.Logger) EditorOption {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger.WithName("filex")
		}
	}
}

// WithClosingFunc sets how RemoveBlock finds the end of a block.
func WithClosingFunc(fn ClosingFunc) EditorOption {
	return func(e *Editor) {
		if fn != nil {
			e.closing = fn
		}
	}
}

// WithFileMode sets the permission bits of files the editor creates.
func WithFileMode(mode os.FileMode) EditorOption {
	return func(e *Editor) {
		if mode != 0 {
			e.fileMode = mode.Perm()
		}
	}
}

// NewEditor creates an editor. Without options it logs nothing, closes
// blocks with BraceOrEnd and creates files with mode 0644.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		logger:   log.NewNop(),
		closing:  BraceOrEnd,
		fileMode: defaultFileMode,
		dirMode:  defaultDirMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// FileMode returns the mode used for new files.
func (e *Editor) FileMode() os.FileMode {
	return e.fileMode
}

// ReadLines reads path into Lines.
func (e *Editor) ReadLines(path string) (Lines, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("ReadLines", path, err, "failed to read file")
	}
	return SplitLines(string(content)), nil
}

// edit reads path, applies fn and writes the result. Nothing is written when
// fn fails.
func (e *Editor) edit(op, path string, fn func(Lines) (Lines, error)) (err error) {
	timer := e.logger.StartTimer(op).WithField("path", path)
	defer func() {
		if err != nil {
			e.logger.Debug(op+" aborted", log.Err(err), log.String("path", path))
			return
		}
		timer.Stop()
	}()

	lines, err := e.ReadLines(path)
	if err != nil {
		return err
	}
	updated, err := fn(lines)
	if err != nil {
		return err
	}
	if err := e.writeAtomic(op, path, []byte(updated.String())); err != nil {
		return err
	}
	e.logger.Debug("file edited", log.Fields{
		"operation":    op,
		"path":         path,
		"lines_before": len(lines),
		"lines_after":  len(updated),
	})
	return nil
}

// locate edits path around the line found by find.
func (e *Editor) locate(op, path string, target Target, find func(Lines, Target) int, fn func(Lines, int) Lines) error {
	return e.edit(op, path, func(lines Lines) (Lines, error) {
		i := find(lines, target)
		if i < 0 {
			return nil, targetNotFound(op, path, target)
		}
		return fn(lines, i), nil
	})
}

func first(l Lines, t Target) int { return l.Index(t) }
func last(l Lines, t Target) int  { return l.LastIndex(t) }

// PrependLine adds line at the top of the file.
func (e *Editor) PrependLine(path, line string) error {
	return e.edit("PrependLine", path, func(lines Lines) (Lines, error) {
		return lines.Prepend(line), nil
	})
}

// AppendLine adds line at the end of the file.
func (e *Editor) AppendLine(path, line string) error {
	return e.edit("AppendLine", path, func(lines Lines) (Lines, error) {
		return lines.Append(line), nil
	})
}

// ReplaceFirstLine replaces the first line matching target.
func (e *Editor) ReplaceFirstLine(path string, target Target, replacement string) error {
	return e.locate("ReplaceFirstLine", path, target, first, func(l Lines, i int) Lines {
		return l.Replace(i, replacement)
	})
}

// ReplaceLastLine replaces the last line matching target.
func (e *Editor) ReplaceLastLine(path string, target Target, replacement string) error {
	return e.locate("ReplaceLastLine", path, target, last, func(l Lines, i int) Lines {
		return l.Replace(i, replacement)
	})
}

// InsertLineBefore inserts line before the first line matching target.
func (e *Editor) InsertLineBefore(path string, target Target, line string) error {
	return e.locate("InsertLineBefore", path, target, first, func(l Lines, i int) Lines {
		return l.InsertBefore(i, line)
	})
}

// InsertLineAfter inserts line after the first line matching target.
func (e *Editor) InsertLineAfter(path string, target Target, line string) error {
	return e.locate("InsertLineAfter", path, target, first, func(l Lines, i int) Lines {
		return l.InsertAfter(i, line)
	})
}

// InsertLineBeforeLast inserts line before the last line matching target.
func (e *Editor) InsertLineBeforeLast(path string, target Target, line string) error {
	return e.locate("InsertLineBeforeLast", path, target, last, func(l Lines, i int) Lines {
		return l.InsertBefore(i, line)
	})
}

// InsertLineAfterLast inserts line after the last line matching target.
func (e *Editor) InsertLineAfterLast(path string, target Target, line string) error {
	return e.locate("InsertLineAfterLast", path, target, last, func(l Lines, i int) Lines {
		return l.InsertAfter(i, line)
	})
}

// RemoveLine removes the first line matching target.
func (e *Editor) RemoveLine(path string, target Target) error {
	return e.locate("RemoveLine", path, target, first, func(l Lines, i int) Lines {
		return l.Remove(i, i)
	})
}

// RemoveBlock removes every block whose opening line matches target, from
// the opening line through its closing line. It fails without writing when
// no line matches or a block has no closing line.
func (e *Editor) RemoveBlock(path string, target Target) error {
	return e.edit("RemoveBlock", path, func(lines Lines) (Lines, error) {
		updated, removed, missing := removeBlocks(lines, target, e.closing)
		if missing != nil {
			return nil, targetNotFound("RemoveBlock", path, missing)
		}
		if removed == 0 {
			return nil, targetNotFound("RemoveBlock", path, target)
		}
		e.logger.Debug("blocks removed", log.Int("blocks", removed), log.String("target", target.String()))
		return updated, nil
	})
}
