// Package error provides structured error handling for the semantic engine.
//
// Package: error
// Title: Coded Error Framework
// Description: This package implements a structured error type carrying an
//              error code, a severity, contextual details, and an optional
//              cause. Codes map the engine's error taxonomy (unsupported
//              language or command, parse failure, profile and pattern
//              validation) onto typed, inspectable results.
// Version: v0.1.0
// Created: 2025-11-12
//
// Usage:
//   import lokaerror "github.com/lokascript/semantic-go/core/error"
//
//   err := lokaerror.New("language not registered").
//     WithCode(lokaerror.CodeLanguageNotSupported).
//     WithDetail("language", "xx").
//     WithOperation("registry.Tokenize")
//
//   if lokaerror.IsNotSupported(err) {
//     // try the next language, or report unsupported input
//   }
package error
