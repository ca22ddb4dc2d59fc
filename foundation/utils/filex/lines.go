// File: lines.go
// Title: Line Sequences
// Description: Lines splits content into terminator preserving lines and
//              provides the index and mutation primitives of the editor.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package filex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultTerminator = "\n"

// Lines is the content of a text file, one element per line. Every element
// keeps its terminator; only the last one may lack it.
type Lines []string

// SplitLines splits content after every "\n".
func SplitLines(content string) Lines {
	lines := Lines{}
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}

// String joins the lines back into file content.
func (l Lines) String() string {
	return strings.Join(l, "")
}

// Index returns the index of the first line matching t, or -1.
func (l Lines) Index(t Target) int {
	return l.IndexFrom(t, 0)
}

// IndexFrom returns the index of the first line at or after start matching t, or -1.
func (l Lines) IndexFrom(t Target, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(l); i++ {
		if t.Match(trimTerminator(l[i])) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last line matching t, or -1.
func (l Lines) LastIndex(t Target) int {
	for i := len(l) - 1; i >= 0; i-- {
		if t.Match(trimTerminator(l[i])) {
			return i
		}
	}
	return -1
}

// Terminator returns the first terminator used in l, "\n" when there is none.
func (l Lines) Terminator() string {
	for _, line := range l {
		if term := terminatorOf(line); term != "" {
			return term
		}
	}
	return defaultTerminator
}

// Prepend returns a copy with line added at the top.
func (l Lines) Prepend(line string) Lines {
	term := l.Terminator()
	if len(l) > 0 {
		if t := terminatorOf(l[0]); t != "" {
			term = t
		}
	}
	return l.insertAt(0, trimTerminator(line)+term)
}

// Append returns a copy with line added at the end. An unterminated last line
// is terminated first.
func (l Lines) Append(line string) Lines {
	term := l.Terminator()
	out := l.clone()
	if n := len(out); n > 0 && terminatorOf(out[n-1]) == "" {
		out[n-1] += term
	}
	return append(out, trimTerminator(line)+term)
}

// InsertBefore returns a copy with line inserted before index i.
func (l Lines) InsertBefore(i int, line string) Lines {
	term := terminatorOf(l[i])
	if term == "" {
		term = l.Terminator()
	}
	return l.insertAt(i, trimTerminator(line)+term)
}

// InsertAfter returns a copy with line inserted after index i. When line i is
// the unterminated last line it is terminated and the new line is left
// without a terminator.
func (l Lines) InsertAfter(i int, line string) Lines {
	term := terminatorOf(l[i])
	if term == "" {
		out := l.clone()
		out[i] += l.Terminator()
		return out.insertAt(i+1, trimTerminator(line))
	}
	return l.insertAt(i+1, trimTerminator(line)+term)
}

// Replace returns a copy with line i replaced. The new line takes over the
// replaced line's terminator.
func (l Lines) Replace(i int, line string) Lines {
	out := l.clone()
	out[i] = trimTerminator(line) + terminatorOf(l[i])
	return out
}

// Remove returns a copy without the lines from start to end inclusive.
func (l Lines) Remove(start, end int) Lines {
	out := make(Lines, 0, len(l)-(end-start+1))
	out = append(out, l[:start]...)
	return append(out, l[end+1:]...)
}

func (l Lines) insertAt(i int, line string) Lines {
	out := make(Lines, 0, len(l)+1)
	out = append(out, l[:i]...)
	out = append(out, line)
	return append(out, l[i:]...)
}

func (l Lines) clone() Lines {
	return append(Lines(nil), l...)
}

func terminatorOf(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

func trimTerminator(line string) string {
	return strings.TrimSuffix(line, terminatorOf(line))
}

// leadingWhitespace returns the indentation of line.
func leadingWhitespace(line string) string {
	for i, r := range line {
		if !unicode.IsSpace(r) || r == '\n' || r == '\r' {
			return line[:i]
		}
	}
	return trimTerminator(line)
}

// startsWithSpace reports whether s begins with a whitespace rune.
func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
