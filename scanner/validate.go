// File: validate.go
// Title: Usage Validation
// Description: Checks detected usage against the known command and
//              block vocabulary and reports unknown names as warnings.
// Version: v0.1.0
// Created: 2025-11-18

package scanner

import "fmt"

// validCommands is the known command vocabulary, lowercased
var validCommands = map[string]bool{
	"toggle": true, "add": true, "remove": true, "removeclass": true,
	"show": true, "hide": true, "set": true, "get": true, "put": true,
	"append": true, "take": true, "increment": true, "decrement": true,
	"log": true, "send": true, "trigger": true, "wait": true,
	"transition": true, "go": true, "call": true,
	"focus": true, "blur": true, "return": true,
}

// validBlocks is the known block vocabulary
var validBlocks = map[string]bool{
	"if": true, "repeat": true, "for": true, "while": true,
	"fetch": true, "async": true,
}

// IsValidCommand reports whether a command name is known
func IsValidCommand(command string) bool {
	return validCommands[command]
}

// IsValidBlock reports whether a block name is known
func IsValidBlock(block string) bool {
	return validBlocks[block]
}

// Validate checks a usage record against the known vocabulary and
// returns a warning per unknown name
func Validate(usage *FileUsage) []string {
	var warnings []string
	for _, command := range usage.CommandList() {
		if !validCommands[command] {
			warnings = append(warnings, fmt.Sprintf("unknown command %q", command))
		}
	}
	for _, block := range usage.BlockList() {
		if !validBlocks[block] {
			warnings = append(warnings, fmt.Sprintf("unknown block %q", block))
		}
	}
	return warnings
}
