// File: default.go
// Title: Default Engine
// Description: Constructs an engine preloaded with the built-in
//              language definitions.
// Version: v0.1.0
// Created: 2025-11-17

package semantic

import (
	lokalog "github.com/lokascript/semantic-go/core/log"
	"github.com/lokascript/semantic-go/semantic/languages"
)

// Default creates an engine with every built-in language installed
func Default() (*Engine, error) {
	return DefaultWithLogger(lokalog.GetDefault())
}

// DefaultWithLogger creates a preloaded engine using the given logger
func DefaultWithLogger(logger *lokalog.Logger) (*Engine, error) {
	engine := New(Options{Logger: logger})
	if err := languages.Install(engine.Registry()); err != nil {
		return nil, err
	}
	return engine, nil
}
