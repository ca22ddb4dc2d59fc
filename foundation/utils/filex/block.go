// File: block.go
// Title: Block Removal
// Description: Closing line detection and removal of indented blocks.
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
)

// ClosingFunc returns the target of the line that closes a block opened by a
// line matching target and indented with indent.
type ClosingFunc func(target Target, indent string) Target

// closingTarget matches a line indented exactly with indent whose text then
// starts with marker.
type closingTarget struct {
	indent string
	marker string
}

func (t closingTarget) Match(line string) bool {
	if !strings.HasPrefix(line, t.indent) {
		return false
	}
	rest := line[len(t.indent):]
	return !startsWithSpace(rest) && strings.HasPrefix(rest, t.marker)
}

func (t closingTarget) String() string {
	return t.indent + t.marker
}

// BraceOrEnd closes brace blocks with "}" and keyword blocks with "end".
func BraceOrEnd(target Target, indent string) Target {
	if strings.Contains(target.String(), "{") {
		return closingTarget{indent: indent, marker: "}"}
	}
	return closingTarget{indent: indent, marker: "end"}
}

// IndentedCloser returns a ClosingFunc that always closes with marker at the
// opening line's indentation.
func IndentedCloser(marker string) ClosingFunc {
	return func(_ Target, indent string) Target {
		return closingTarget{indent: indent, marker: marker}
	}
}

// removeBlocks deletes every block opening on a line matching target. It
// works on a copy and reports how many blocks were removed.
func removeBlocks(lines Lines, target Target, closing ClosingFunc) (Lines, int, Target) {
	removed := 0
	for {
		start := lines.Index(target)
		if start < 0 {
			return lines, removed, nil
		}
		closer := closing(target, leadingWhitespace(lines[start]))
		end := lines.IndexFrom(closer, start)
		if end < 0 {
			return lines, removed, closer
		}
		lines = lines.Remove(start, end)
		removed++
	}
}
