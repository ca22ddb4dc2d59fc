// File: errors.go
// Title: Line Editor Errors
// Description: Error constructors and predicates for missing files and
//              missing targets.
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

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func fileNotFound(op, path string, cause error) error {
	var err *tkerror.Error
	if cause != nil {
		err = tkerror.Wrap(cause, "file not found: "+path)
	} else {
		err = tkerror.New("file not found: " + path)
	}
	return err.WithCode(tkerror.CodeFileNotFound).
		WithOperation("filex." + op).
		WithDetail("path", path)
}

func targetNotFound(op, path string, target Target) error {
	return tkerror.Newf("cannot find %q in %s", target.String(), path).
		WithCode(tkerror.CodeTargetNotFound).
		WithOperation("filex." + op).
		WithDetail("path", path).
		WithDetail("target", target.String())
}

func ioError(op, path string, cause error, message string) error {
	if os.IsNotExist(cause) {
		return fileNotFound(op, path, cause)
	}
	return tkerror.Wrap(cause, message).
		WithCode(tkerror.CodeIO).
		WithOperation("filex." + op).
		WithDetail("path", path)
}

// IsFileNotFound reports whether err, or an error it wraps, is a missing file.
func IsFileNotFound(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeFileNotFound)
}

// IsTargetNotFound reports whether err, or an error it wraps, is a missing target.
func IsTargetNotFound(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeTargetNotFound)
}
