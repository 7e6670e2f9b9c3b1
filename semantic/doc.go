// File: doc.go
// Title: Package Documentation
// Description: Overview of the semantic package.
// Version: v0.1.0
// Created: 2025-11-17

// Package semantic resolves scripting commands written in natural
// languages into language-independent command records.
//
// Each supported language carries a profile describing its word order,
// grammatical marking strategy and keyword vocabulary. A per-language
// tokenizer turns raw text into a typed token stream, and a pattern
// matcher binds the stream to declarative templates that extract
// semantic roles such as patient and destination.
//
// A minimal session:
//
//	engine, err := semantic.Default()
//	if err != nil {
//		return err
//	}
//	cmd, err := engine.Resolve("en", "toggle .active on #button")
//	// cmd.Action == "toggle"
//	// cmd.Roles["patient"] == ".active"
//	// cmd.Roles["destination"] == "#button"
//
// Custom languages are registered through an empty engine:
//
//	engine := semantic.New(semantic.Options{})
//	err := engine.RegisterLanguage(profile)
//	err = engine.RegisterPatterns(patterns...)
package semantic
