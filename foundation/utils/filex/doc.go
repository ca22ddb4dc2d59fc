// Package filex implements line oriented file editing for textkit.
//
// Package: filex
// Title: Line Editor and File Operations
// Description: Reads a text file as a sequence of lines, locates a line by
//              substring or pattern, mutates the sequence and writes the
//              file back atomically. Also carries the small filesystem
//              helpers the editor and the CLI need.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-17 v0.2.0: Reworked into a line editor with targets and block removal
//
// # Lines
//
// A file is read into Lines, one element per line, each keeping its own
// terminator ("\n", "\r\n", or nothing for an unterminated last line).
// Inserted lines take the terminator of the line next to them, so a CRLF file
// stays CRLF.
//
// # Targets
//
// Line operations locate their anchor with a Target:
//
//	filex.Contains("routes do")                    // first line containing the text
//	filex.Matches(regexp.MustCompile(`^\s*end$`))  // first line matching the pattern
//
// # Operations
//
//	filex.Touch(path)
//	filex.Write(path, "class Books\n")            // create or append
//	filex.Rewrite(path, "class Books\nend\n")     // truncate, file must exist
//	filex.InsertLineAfter(path, filex.Contains("routes do"), "  get '/books'")
//	filex.ReplaceLastLine(path, filex.Contains("root"), "  root to: 'home#index'")
//	filex.RemoveBlock(path, filex.Contains("resources :books do"))
//
// Every line operation reads the whole file, computes the new content and
// writes once. When the target cannot be found the file is left untouched and
// the error carries code TARGET_NOT_FOUND; a missing file yields
// FILE_NOT_FOUND. Use IsTargetNotFound and IsFileNotFound to test for them.
//
// # Blocks
//
// RemoveBlock removes every block that opens on a matching line. The closing
// line is found with the editor's ClosingFunc. The default, BraceOrEnd, looks
// for a line with the same indentation as the opening line that starts with
// "}" when the target text contains "{", and with "end" otherwise. Other
// formats can use IndentedCloser:
//
//	e := filex.NewEditor(filex.WithClosingFunc(filex.IndentedCloser("</div>")))
//
// # Editors
//
// The package functions use a default Editor without logging. NewEditor
// accepts a logger, a closing function and the mode for newly created files.
// An Editor is not safe for concurrent edits of the same file.
package filex
