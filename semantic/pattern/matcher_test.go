// File: matcher_test.go
// Title: Matcher Tests
// Description: Tests for structural matching, priority ordering,
//              optional groups and role extraction.
// Version: v0.1.0
// Created: 2025-11-18

package pattern

import (
	"testing"

	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
	lokatoken "github.com/lokascript/semantic-go/semantic/token"
)

// kw and sel build test tokens without running a tokenizer
func kw(text, normalized string) lokatoken.Token {
	return lokatoken.Token{Kind: lokatoken.KindKeyword, Text: text, Normalized: normalized}
}

func sel(text string) lokatoken.Token {
	return lokatoken.Token{Kind: lokatoken.KindSelector, Text: text}
}

func stream(tokens ...lokatoken.Token) *lokatoken.Stream {
	return lokatoken.NewStream("en", lokaprofile.DirectionLTR, "", tokens, nil)
}

func togglePattern() *Pattern {
	return &Pattern{
		ID:       "toggle-test",
		Language: "en",
		Command:  "toggle",
		Priority: 100,
		Template: []TemplateToken{
			Literal{Value: "toggle"},
			Role{Name: "patient"},
			Group{Optional: true, Tokens: []TemplateToken{
				Literal{Value: "on"},
				Role{Name: "destination"},
			}},
		},
		Extraction: map[string]ExtractionRule{
			"patient":     ByPosition{Index: 1},
			"destination": ByMarker{Word: "on", Position: lokaprofile.MarkerBefore, Default: "me"},
		},
	}
}

func TestMatchOptionalGroup(t *testing.T) {
	m := NewMatcher(Options{})
	patterns := []*Pattern{togglePattern()}

	tests := []struct {
		name      string
		tokens    []lokatoken.Token
		wantMatch bool
		wantRoles map[string]string
	}{
		{
			name:      "group present",
			tokens:    []lokatoken.Token{kw("toggle", "toggle"), sel(".active"), kw("on", "on"), sel("#button")},
			wantMatch: true,
			wantRoles: map[string]string{"patient": ".active", "destination": "#button"},
		},
		{
			name:      "group absent uses default",
			tokens:    []lokatoken.Token{kw("toggle", "toggle"), sel(".active")},
			wantMatch: true,
			wantRoles: map[string]string{"patient": ".active", "destination": "me"},
		},
		{
			name:      "partial group rejected",
			tokens:    []lokatoken.Token{kw("toggle", "toggle"), sel(".active"), kw("on", "on")},
			wantMatch: false,
		},
		{
			name:      "trailing input rejected",
			tokens:    []lokatoken.Token{kw("toggle", "toggle"), sel(".active"), sel("#x")},
			wantMatch: false,
		},
		{
			name:      "wrong command literal",
			tokens:    []lokatoken.Token{kw("add", "add"), sel(".active")},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := m.Match(patterns, stream(tt.tokens...))
			if ok != tt.wantMatch {
				t.Fatalf("Match() ok = %t, want %t", ok, tt.wantMatch)
			}
			if !ok {
				return
			}
			for role, want := range tt.wantRoles {
				if got := result.Roles[role]; got != want {
					t.Errorf("role %q = %q, want %q", role, got, want)
				}
			}
		})
	}
}

func TestMatchPriorityOrdering(t *testing.T) {
	low := &Pattern{
		ID: "low", Language: "en", Command: "show", Priority: 90,
		Template: []TemplateToken{
			Literal{Value: "show"},
			Role{Name: "patient"},
		},
	}
	high := &Pattern{
		ID: "high", Language: "en", Command: "show", Priority: 100,
		Template: []TemplateToken{
			Literal{Value: "show"},
			Role{Name: "patient"},
		},
	}

	m := NewMatcher(Options{})
	// Registered low first; priority must still pick high
	result, ok := m.Match([]*Pattern{low, high}, stream(kw("show", "show"), sel("#modal")))
	if !ok {
		t.Fatal("Match() found no match")
	}
	if result.Pattern.ID != "high" {
		t.Errorf("matched pattern = %q, want \"high\"", result.Pattern.ID)
	}
}

func TestMatchEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	first := &Pattern{
		ID: "first", Language: "en", Command: "show", Priority: 100,
		Template: []TemplateToken{Literal{Value: "show"}, Role{Name: "patient"}},
	}
	second := &Pattern{
		ID: "second", Language: "en", Command: "show", Priority: 100,
		Template: []TemplateToken{Literal{Value: "show"}, Role{Name: "patient"}},
	}

	m := NewMatcher(Options{})
	result, ok := m.Match([]*Pattern{first, second}, stream(kw("show", "show"), sel("#modal")))
	if !ok {
		t.Fatal("Match() found no match")
	}
	if result.Pattern.ID != "first" {
		t.Errorf("matched pattern = %q, want \"first\"", result.Pattern.ID)
	}
}

func TestMatchMarkerAfterValue(t *testing.T) {
	// Particle grammar: value precedes its marker
	p := &Pattern{
		ID: "ja-toggle", Language: "ja", Command: "toggle", Priority: 100,
		Template: []TemplateToken{
			Group{Optional: true, Tokens: []TemplateToken{
				Role{Name: "destination"},
				Literal{Value: "で"},
			}},
			Role{Name: "patient"},
			Literal{Value: "を"},
			Literal{Value: "toggle"},
		},
		Extraction: map[string]ExtractionRule{
			"patient":     ByMarker{Word: "を", Position: lokaprofile.MarkerAfter},
			"destination": ByMarker{Word: "で", Position: lokaprofile.MarkerAfter, Default: "me"},
		},
	}

	m := NewMatcher(Options{})

	t.Run("without location", func(t *testing.T) {
		result, ok := m.Match([]*Pattern{p}, stream(sel(".active"), kw("を", "を"), kw("切り替え", "toggle")))
		if !ok {
			t.Fatal("Match() found no match")
		}
		if got := result.Roles["patient"]; got != ".active" {
			t.Errorf("patient = %q, want \".active\"", got)
		}
		if got := result.Roles["destination"]; got != "me" {
			t.Errorf("destination = %q, want \"me\"", got)
		}
	})

	t.Run("with location", func(t *testing.T) {
		result, ok := m.Match([]*Pattern{p}, stream(
			sel("#button"), kw("で", "で"), sel(".active"), kw("を", "を"), kw("切り替え", "toggle")))
		if !ok {
			t.Fatal("Match() found no match")
		}
		if got := result.Roles["destination"]; got != "#button" {
			t.Errorf("destination = %q, want \"#button\"", got)
		}
		if got := result.Roles["patient"]; got != ".active" {
			t.Errorf("patient = %q, want \".active\"", got)
		}
	})
}

func TestMatchLiteralAlternatives(t *testing.T) {
	p := &Pattern{
		ID: "hide", Language: "en", Command: "hide", Priority: 100,
		Template: []TemplateToken{
			Literal{Value: "hide", Alternatives: []string{"conceal"}},
			Role{Name: "patient"},
		},
	}

	m := NewMatcher(Options{})
	result, ok := m.Match([]*Pattern{p}, stream(kw("conceal", ""), sel("#modal")))
	if !ok {
		t.Fatal("Match() found no match")
	}
	if got := result.Roles["patient"]; got != "#modal" {
		t.Errorf("patient = %q, want \"#modal\"", got)
	}
}

func TestMatchStructuralBindingWithoutRules(t *testing.T) {
	// Roles without extraction rules take the tokens their slot consumed
	p := &Pattern{
		ID: "set", Language: "en", Command: "set", Priority: 100,
		Template: []TemplateToken{
			Literal{Value: "set"},
			Role{Name: "patient"},
			Literal{Value: "to"},
			Role{Name: "value"},
		},
	}

	m := NewMatcher(Options{})
	result, ok := m.Match([]*Pattern{p}, stream(
		kw("set", "set"),
		lokatoken.Token{Kind: lokatoken.KindIdentifier, Text: ":count"},
		kw("to", "to"),
		lokatoken.Token{Kind: lokatoken.KindLiteral, Text: "5"},
	))
	if !ok {
		t.Fatal("Match() found no match")
	}
	if got := result.Roles["patient"]; got != ":count" {
		t.Errorf("patient = %q, want \":count\"", got)
	}
	if got := result.Roles["value"]; got != "5" {
		t.Errorf("value = %q, want \"5\"", got)
	}
}

func TestMatchEmptyStream(t *testing.T) {
	m := NewMatcher(Options{})
	if _, ok := m.Match([]*Pattern{togglePattern()}, stream()); ok {
		t.Error("Match() on empty stream should not match")
	}
}

func TestPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		wantErr bool
	}{
		{"valid", togglePattern(), false},
		{"missing language", &Pattern{Command: "toggle", Template: []TemplateToken{Literal{Value: "x"}}}, true},
		{"missing command", &Pattern{Language: "en", Template: []TemplateToken{Literal{Value: "x"}}}, true},
		{"empty template", &Pattern{Language: "en", Command: "toggle"}, true},
		{"blank literal", &Pattern{Language: "en", Command: "toggle", Template: []TemplateToken{Literal{}}}, true},
		{"blank role", &Pattern{Language: "en", Command: "toggle", Template: []TemplateToken{Role{}}}, true},
		{"empty group", &Pattern{Language: "en", Command: "toggle", Template: []TemplateToken{Group{}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestPatternRender(t *testing.T) {
	p := togglePattern()

	tests := []struct {
		name    string
		roles   map[string]string
		want    string
		wantErr bool
	}{
		{
			name:  "all roles",
			roles: map[string]string{"patient": ".active", "destination": "#button"},
			want:  "toggle .active on #button",
		},
		{
			name:  "optional group dropped",
			roles: map[string]string{"patient": ".active"},
			want:  "toggle .active",
		},
		{
			name:    "required role missing",
			roles:   map[string]string{"destination": "#button"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Render(tt.roles, " ", nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %t", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPatternRoles(t *testing.T) {
	got := togglePattern().Roles()
	want := []string{"patient", "destination"}
	if len(got) != len(want) {
		t.Fatalf("Roles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Roles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func BenchmarkMatchToggle(b *testing.B) {
	m := NewMatcher(Options{})
	patterns := []*Pattern{togglePattern()}
	s := stream(kw("toggle", "toggle"), sel(".active"), kw("on", "on"), sel("#button"))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Match(patterns, s)
	}
}
