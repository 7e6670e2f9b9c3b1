// File: registry_test.go
// Title: Registry Tests
// Description: Tests for language and pattern registration semantics.
// Version: v0.1.0
// Created: 2025-11-18

package registry

import (
	"testing"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func englishProfile() *lokaprofile.Profile {
	return &lokaprofile.Profile{
		Code:       "en",
		Name:       "English",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSVO,
		Marking:    lokaprofile.MarkingPreposition,
		UsesSpaces: true,
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "toggle", Normalized: "toggle"},
		},
	}
}

func togglePattern(id string, priority int) *lokapattern.Pattern {
	return &lokapattern.Pattern{
		ID:       id,
		Language: "en",
		Command:  "toggle",
		Priority: priority,
		Template: []lokapattern.TemplateToken{
			lokapattern.Literal{Value: "toggle"},
			lokapattern.Role{Name: "patient"},
		},
	}
}

func TestRegisterLanguage(t *testing.T) {
	r := New(Options{})

	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatalf("RegisterLanguage() error = %v", err)
	}
	if !r.HasLanguage("en") {
		t.Error("HasLanguage(\"en\") = false after registration")
	}
	if !r.HasLanguage("EN") {
		t.Error("language codes should be case-insensitive")
	}

	prof, err := r.Profile("en")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if prof.Name != "English" {
		t.Errorf("Profile().Name = %q, want \"English\"", prof.Name)
	}
}

func TestRegisterLanguageNil(t *testing.T) {
	r := New(Options{})
	err := r.RegisterLanguage(nil)
	if err == nil {
		t.Fatal("RegisterLanguage(nil) error = nil, want error")
	}
	if got := lokaerror.GetCode(err); got != lokaerror.CodeInvalidProfile {
		t.Errorf("error code = %s, want %s", got, lokaerror.CodeInvalidProfile)
	}
}

func TestRegisterLanguageReplaces(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterPatterns(togglePattern("p1", 100)); err != nil {
		t.Fatal(err)
	}

	replacement := englishProfile()
	replacement.Name = "English (updated)"
	if err := r.RegisterLanguage(replacement); err != nil {
		t.Fatalf("re-registration error = %v", err)
	}

	prof, _ := r.Profile("en")
	if prof.Name != "English (updated)" {
		t.Errorf("Profile().Name = %q, want replacement to win", prof.Name)
	}

	// Patterns registered before the replacement survive
	patterns, err := r.Patterns("en", "toggle")
	if err != nil {
		t.Fatalf("Patterns() error = %v", err)
	}
	if len(patterns) != 1 {
		t.Errorf("got %d patterns after replacement, want 1", len(patterns))
	}
}

func TestRegisterPatternsAppendOrder(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterPatterns(togglePattern("first", 100), togglePattern("second", 100)); err != nil {
		t.Fatalf("RegisterPatterns() error = %v", err)
	}

	patterns, err := r.Patterns("en", "toggle")
	if err != nil {
		t.Fatalf("Patterns() error = %v", err)
	}
	if len(patterns) != 2 || patterns[0].ID != "first" || patterns[1].ID != "second" {
		t.Errorf("pattern order = %v, want registration order", ids(patterns))
	}
}

func TestRegisterPatternsAssignsID(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}

	p := togglePattern("", 100)
	if err := r.RegisterPatterns(p); err != nil {
		t.Fatalf("RegisterPatterns() error = %v", err)
	}
	if p.ID == "" {
		t.Error("pattern without ID should be assigned one")
	}
}

func TestRegisterPatternsRequiresLanguage(t *testing.T) {
	r := New(Options{})
	err := r.RegisterPatterns(togglePattern("p1", 100))
	if err == nil {
		t.Fatal("RegisterPatterns() error = nil for unregistered language")
	}
	if got := lokaerror.GetCode(err); got != lokaerror.CodeLanguageNotSupported {
		t.Errorf("error code = %s, want %s", got, lokaerror.CodeLanguageNotSupported)
	}
}

func TestRegisterPatternsValidates(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}

	invalid := &lokapattern.Pattern{Language: "en", Command: "toggle"}
	if err := r.RegisterPatterns(invalid); err == nil {
		t.Error("RegisterPatterns() error = nil for pattern without template")
	}
}

func TestPatternsNotSupported(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}

	t.Run("unknown language", func(t *testing.T) {
		_, err := r.Patterns("xx", "toggle")
		if got := lokaerror.GetCode(err); got != lokaerror.CodeLanguageNotSupported {
			t.Errorf("error code = %s, want %s", got, lokaerror.CodeLanguageNotSupported)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := r.Patterns("en", "teleport")
		if got := lokaerror.GetCode(err); got != lokaerror.CodeCommandNotSupported {
			t.Errorf("error code = %s, want %s", got, lokaerror.CodeCommandNotSupported)
		}
	})
}

func TestTokenize(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}

	stream, err := r.Tokenize("en", "toggle .active")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if stream.Len() != 2 {
		t.Errorf("token count = %d, want 2", stream.Len())
	}

	if _, err := r.Tokenize("xx", "toggle"); err == nil {
		t.Error("Tokenize() for unknown language should fail")
	}
}

func TestLanguagesAndCommands(t *testing.T) {
	r := New(Options{})
	if err := r.RegisterLanguage(englishProfile()); err != nil {
		t.Fatal(err)
	}

	ja := englishProfile()
	ja.Code = "ja"
	if err := r.RegisterLanguage(ja); err != nil {
		t.Fatal(err)
	}

	langs := r.Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "ja" {
		t.Errorf("Languages() = %v, want [en ja]", langs)
	}

	if err := r.RegisterPatterns(togglePattern("p1", 100)); err != nil {
		t.Fatal(err)
	}
	cmds := r.Commands("en")
	if len(cmds) != 1 || cmds[0] != "toggle" {
		t.Errorf("Commands(\"en\") = %v, want [toggle]", cmds)
	}
	if cmds := r.Commands("ja"); len(cmds) != 0 {
		t.Errorf("Commands(\"ja\") = %v, want empty", cmds)
	}
}

func ids(patterns []*lokapattern.Pattern) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.ID
	}
	return out
}
