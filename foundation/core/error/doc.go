// Package error provides structured error handling for the textkit foundation.
//
// Package: error
// Title: textkit Error Handling
// Description: Structured errors carrying a code, a severity, an operation name
//              and key/value details. Errors wrap causes and stay compatible with
//              errors.Is / errors.As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Reduced to the codes used by the inflector and the line editor
//
// Usage:
//
//	import tkerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := tkerror.New("cannot find `routes do' inside `config/routes.rb'").
//		WithCode(tkerror.CodeTargetNotFound).
//		WithOperation("filex.RemoveLine").
//		WithDetail("target", "routes do").
//		WithDetail("path", "config/routes.rb")
//
//	if tkerror.HasCode(err, tkerror.CodeTargetNotFound) {
//		// nothing matched, the file was left untouched
//	}
package error
