// File: languages.go
// Title: Built-in Language Definitions
// Description: Installation of the bundled language profiles and
//              pattern sets. Each language lives in its own file and
//              contributes a definition; Install registers them all
//              into a registry in one pass.
// Version: v0.1.0
// Created: 2025-11-17

// Package languages bundles the built-in language definitions: a
// profile, keyword vocabulary and pattern set per language, derived
// from each language's word order and role-marking grammar.
package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
	lokaregistry "github.com/lokascript/semantic-go/semantic/registry"
)

// definition is one built-in language: its profile plus the pattern
// set expressing commands in that language's grammar
type definition struct {
	profile  *lokaprofile.Profile
	patterns []*lokapattern.Pattern
}

// builtins lists the bundled languages. Order only affects the order
// of registration, not matching.
var builtins = []func() definition{
	english,
	spanish,
	french,
	german,
	japanese,
	korean,
	chinese,
	arabic,
	turkish,
}

// Install registers every built-in language and its patterns
func Install(r *lokaregistry.Registry) error {
	for _, build := range builtins {
		def := build()
		if err := r.RegisterLanguage(def.profile); err != nil {
			return err
		}
		if err := r.RegisterPatterns(def.patterns...); err != nil {
			return err
		}
	}
	return nil
}

// Codes lists the built-in language codes in registration order
func Codes() []string {
	codes := make([]string, 0, len(builtins))
	for _, build := range builtins {
		codes = append(codes, build().profile.Code)
	}
	return codes
}
