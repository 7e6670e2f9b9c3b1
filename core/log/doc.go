// Package log provides structured logging for the semantic engine.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats, and log levels.
//              It is used by the tokenizer, matcher, registry, scanner,
//              CLI, and HTTP service.
// Version: v0.1.0
// Created: 2025-11-12
//
// Features:
// - Structured logging with JSON, text, and console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with request IDs and custom fields
// - Immutable loggers; With* methods return configured clones
//
// Usage:
//   import lokalog "github.com/lokascript/semantic-go/core/log"
//
//   logger := lokalog.New().
//     WithLevel(lokalog.LevelDebug).
//     WithFormat(lokalog.FormatConsole).
//     WithField("component", "tokenizer")
//
//   logger.Debug("token emitted", lokalog.Field("kind", "selector"))
package log
