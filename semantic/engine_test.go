// File: engine_test.go
// Title: Engine Tests
// Description: End-to-end tests resolving natural-language commands
//              through the built-in language definitions.
// Version: v0.1.0
// Created: 2025-11-18

package semantic

import (
	"strings"
	"testing"

	lokaerror "github.com/lokascript/semantic-go/core/error"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	return engine
}

func TestResolveAcrossLanguages(t *testing.T) {
	engine := defaultEngine(t)

	tests := []struct {
		name      string
		language  string
		input     string
		wantAct   string
		wantRoles map[string]string
	}{
		{
			name:     "english with destination",
			language: "en",
			input:    "toggle .active on #button",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient":     ".active",
				"destination": "#button",
			},
		},
		{
			name:     "english destination defaults",
			language: "en",
			input:    "toggle .active",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient":     ".active",
				"destination": "me",
			},
		},
		{
			name:     "japanese particles",
			language: "ja",
			input:    ".active を 切り替え",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient":     ".active",
				"destination": "me",
			},
		},
		{
			name:     "japanese unsegmented",
			language: "ja",
			input:    ".activeを切り替え",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient": ".active",
			},
		},
		{
			name:     "korean located toggle",
			language: "ko",
			input:    "#button 에서 .active 를 토글",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient":     ".active",
				"destination": "#button",
			},
		},
		{
			name:     "chinese ba construction",
			language: "zh",
			input:    "把.active切换",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient": ".active",
			},
		},
		{
			name:     "turkish verb final",
			language: "tr",
			input:    ".active değiştir",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient": ".active",
			},
		},
		{
			name:     "arabic verb first",
			language: "ar",
			input:    "بدّل .active",
			wantAct:  "toggle",
			wantRoles: map[string]string{
				"patient": ".active",
			},
		},
		{
			name:     "spanish add with destination",
			language: "es",
			input:    "añadir .selected a #list",
			wantAct:  "add",
			wantRoles: map[string]string{
				"patient":     ".selected",
				"destination": "#list",
			},
		},
		{
			name:     "english set",
			language: "en",
			input:    "set :count to 5",
			wantAct:  "set",
			wantRoles: map[string]string{
				"patient": ":count",
				"value":   "5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := engine.Resolve(tt.language, tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) error = %v", tt.language, tt.input, err)
			}
			if cmd.Action != tt.wantAct {
				t.Errorf("Action = %q, want %q", cmd.Action, tt.wantAct)
			}
			if cmd.Language != tt.language {
				t.Errorf("Language = %q, want %q", cmd.Language, tt.language)
			}
			if cmd.ID == "" {
				t.Error("record ID is blank")
			}
			for role, want := range tt.wantRoles {
				got, ok := cmd.Role(role)
				if !ok {
					t.Errorf("role %q missing", role)
					continue
				}
				if got != want {
					t.Errorf("role %q = %q, want %q", role, got, want)
				}
			}
		})
	}
}

func TestResolveUnsupportedLanguage(t *testing.T) {
	engine := defaultEngine(t)

	_, err := engine.Resolve("xx", "toggle .active")
	if err == nil {
		t.Fatal("Resolve() error = nil for unregistered language")
	}
	if got := lokaerror.GetCode(err); got != lokaerror.CodeLanguageNotSupported {
		t.Errorf("error code = %s, want %s", got, lokaerror.CodeLanguageNotSupported)
	}
}

func TestResolveParseFailure(t *testing.T) {
	engine := defaultEngine(t)

	_, err := engine.Resolve("en", "banana telescope quickly")
	if err == nil {
		t.Fatal("Resolve() error = nil, want parse failure")
	}
	if got := lokaerror.GetCode(err); got != lokaerror.CodeParseFailure {
		t.Errorf("error code = %s, want %s", got, lokaerror.CodeParseFailure)
	}
}

func TestResolveCandidateOrder(t *testing.T) {
	engine := defaultEngine(t)

	// Restricting candidates prunes the search; caller order is tried first
	cmd, err := engine.Resolve("en", "toggle .active", "toggle")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cmd.Action != "toggle" {
		t.Errorf("Action = %q, want \"toggle\"", cmd.Action)
	}

	// A candidate list without the matching command fails
	if _, err := engine.Resolve("en", "toggle .active", "show", "hide"); err == nil {
		t.Error("Resolve() with wrong candidates should fail")
	}

	// Unknown candidates are skipped, not fatal
	cmd, err = engine.Resolve("en", "toggle .active", "teleport", "toggle")
	if err != nil {
		t.Fatalf("Resolve() with unknown candidate error = %v", err)
	}
	if cmd.Action != "toggle" {
		t.Errorf("Action = %q, want \"toggle\"", cmd.Action)
	}
}

func TestMatchReportsNoMatch(t *testing.T) {
	engine := defaultEngine(t)

	cmd, ok, err := engine.Match("en", "toggle", "toggle .active")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if !ok || cmd == nil {
		t.Fatal("Match() should succeed for a toggle command")
	}

	cmd, ok, err = engine.Match("en", "show", "toggle .active")
	if err != nil {
		t.Fatalf("Match() no-match should not error, got %v", err)
	}
	if ok || cmd != nil {
		t.Error("Match() reported a match for the wrong command")
	}
}

func TestInputValidation(t *testing.T) {
	engine := defaultEngine(t)

	t.Run("empty", func(t *testing.T) {
		_, err := engine.Resolve("en", "   ")
		if got := lokaerror.GetCode(err); got != lokaerror.CodeEmptyInput {
			t.Errorf("error code = %s, want %s", got, lokaerror.CodeEmptyInput)
		}
	})

	t.Run("too long", func(t *testing.T) {
		_, err := engine.Resolve("en", "toggle "+strings.Repeat("x", MaxInputLength))
		if got := lokaerror.GetCode(err); got != lokaerror.CodeInputTooLong {
			t.Errorf("error code = %s, want %s", got, lokaerror.CodeInputTooLong)
		}
	})
}

func TestRenderRoundTrip(t *testing.T) {
	engine := defaultEngine(t)

	tests := []struct {
		name     string
		language string
		command  string
		roles    map[string]string
		want     string
	}{
		{
			name:     "english",
			language: "en",
			command:  "toggle",
			roles:    map[string]string{"patient": ".active", "destination": "#button"},
			want:     "toggle .active on #button",
		},
		{
			name:     "japanese unsegmented with native verb",
			language: "ja",
			command:  "toggle",
			roles:    map[string]string{"patient": ".active"},
			want:     ".activeを切り替え",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Render(tt.language, tt.command, tt.roles)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}

			// The rendered form resolves back to the same action
			cmd, err := engine.Resolve(tt.language, got)
			if err != nil {
				t.Fatalf("Resolve(rendered) error = %v", err)
			}
			if cmd.Action != tt.command {
				t.Errorf("round-trip Action = %q, want %q", cmd.Action, tt.command)
			}
		})
	}
}

func BenchmarkResolveEnglish(b *testing.B) {
	engine, err := Default()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Resolve("en", "toggle .active on #button", "toggle"); err != nil {
			b.Fatal(err)
		}
	}
}
