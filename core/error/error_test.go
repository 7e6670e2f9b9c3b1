// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity
//              and metadata.
// Version: v0.1.0
// Created: 2025-11-18

package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("language %q is not supported", "xx")
	want := `language "xx" is not supported`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(cause, "operation failed")

	if err.Error() != "operation failed: underlying failure" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "message") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapPreservesClassification(t *testing.T) {
	inner := New("no pattern matched").
		WithCode(CodeParseFailure).
		WithOperation("engine.Resolve").
		WithDetail("language", "en")

	wrapped := Wrap(inner, "request failed")

	if wrapped.Code() != CodeParseFailure {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeParseFailure)
	}
	if wrapped.Operation() != "engine.Resolve" {
		t.Errorf("Operation() = %q, want engine.Resolve", wrapped.Operation())
	}
	if wrapped.Details()["language"] != "en" {
		t.Error("Details() should carry the inner error's details")
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeLanguageNotSupported, SeverityLow},
		{CodeParseFailure, SeverityLow},
		{CodeInvalidProfile, SeverityMedium},
		{CodeInternal, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithDetails(t *testing.T) {
	err := New("x").
		WithDetail("a", 1).
		WithDetails(map[string]interface{}{"b": 2, "c": 3})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("Details() has %d entries, want 3", len(details))
	}

	// Details() returns a copy
	details["d"] = 4
	if len(err.Details()) != 3 {
		t.Error("mutating the returned map should not affect the error")
	}
}

func TestHasCode(t *testing.T) {
	err := New("x").WithCode(CodeEmptyInput)

	if !HasCode(err, CodeEmptyInput) {
		t.Error("HasCode() = false for matching code")
	}
	if HasCode(err, CodeParseFailure) {
		t.Error("HasCode() = true for different code")
	}
	if HasCode(errors.New("foreign"), CodeEmptyInput) {
		t.Error("HasCode() = true for foreign error")
	}

	// Codes are found through wrapping chains
	chained := fmt.Errorf("outer: %w", err)
	if !HasCode(chained, CodeEmptyInput) {
		t.Error("HasCode() should unwrap standard wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New("x").WithCode(CodeScanFailure)); got != CodeScanFailure {
		t.Errorf("GetCode() = %v, want %v", got, CodeScanFailure)
	}
	if got := GetCode(errors.New("foreign")); got != CodeUnknown {
		t.Errorf("GetCode(foreign) = %v, want %v", got, CodeUnknown)
	}
}

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeLanguageNotSupported, true},
		{CodeCommandNotSupported, true},
		{CodeParseFailure, false},
		{CodeInternal, false},
	}

	for _, tt := range tests {
		err := New("x").WithCode(tt.code)
		if got := IsNotSupported(err); got != tt.want {
			t.Errorf("IsNotSupported(%v) = %t, want %t", tt.code, got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCodeIsRecoverable(t *testing.T) {
	recoverable := []Code{CodeLanguageNotSupported, CodeCommandNotSupported}
	for _, code := range recoverable {
		if !code.IsRecoverable() {
			t.Errorf("%v.IsRecoverable() = false, want true", code)
		}
	}
	for _, code := range []Code{CodeInternal, CodeParseFailure} {
		if code.IsRecoverable() {
			t.Errorf("%v.IsRecoverable() = true, want false", code)
		}
	}
}
