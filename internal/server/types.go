// File: types.go
// Title: API Types
// Description: Request and response shapes for the HTTP API.
// Version: v0.1.0
// Created: 2025-11-18

package server

import (
	"github.com/lokascript/semantic-go/scanner"
	"github.com/lokascript/semantic-go/semantic"
)

// ParseRequest asks for command text to be resolved in one language.
// Commands optionally restricts and orders the candidate commands.
type ParseRequest struct {
	Input    string   `json:"input" binding:"required"`
	Language string   `json:"language" binding:"required"`
	Commands []string `json:"commands,omitempty"`
}

// ParseResponse carries the resolved command record
type ParseResponse struct {
	Command *semantic.Command `json:"command"`
}

// ValidateRequest asks whether command text parses in a language
type ValidateRequest struct {
	Input    string `json:"input" binding:"required"`
	Language string `json:"language" binding:"required"`
}

// ValidateResponse reports parse validity; Reason is set when invalid
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Action string `json:"action,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ScanRequest carries template content to scan for script usage
type ScanRequest struct {
	Content string `json:"content" binding:"required"`
}

// ScanResponse reports detected usage, the optimal regional bundle
// and any vocabulary warnings
type ScanResponse struct {
	scanner.Report
	Region   string   `json:"region,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// LanguageInfo describes one registered language
type LanguageInfo struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"native_name"`
	Direction  string   `json:"direction"`
	WordOrder  string   `json:"word_order"`
	Commands   []string `json:"commands"`
}

// LanguagesResponse lists the registered languages
type LanguagesResponse struct {
	Languages []LanguageInfo `json:"languages"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Parses  int64  `json:"parses"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
