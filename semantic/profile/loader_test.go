// File: loader_test.go
// Title: Profile Loader Tests
// Description: Tests for TOML/YAML profile loading.
// Version: v0.1.0
// Created: 2025-11-18

package profile

import (
	"os"
	"path/filepath"
	"testing"

	lokaerror "github.com/lokascript/semantic-go/core/error"
)

const tomlProfile = `
code = "ja"
name = "Japanese"
native_name = "日本語"
direction = "ltr"
word_order = "SOV"
marking = "particle"
uses_spaces = false

[references]
me = "私"

[role_markers.patient]
primary = "を"
position = "after"

[keywords.toggle]
primary = "切り替え"
alternatives = ["トグル"]
normalized = "toggle"
`

const yamlProfile = `
code: es
name: Spanish
direction: ltr
word_order: SVO
marking: preposition
uses_spaces: true
role_markers:
  destination:
    primary: en
    position: before
keywords:
  toggle:
    primary: alternar
    normalized: toggle
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ja.toml", tomlProfile)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if p.Code != "ja" {
		t.Errorf("Code = %q, want \"ja\"", p.Code)
	}
	if p.UsesSpaces {
		t.Error("UsesSpaces = true, want false")
	}
	marker, ok := p.Marker("patient")
	if !ok || marker.Primary != "を" || marker.Position != MarkerAfter {
		t.Errorf("Marker(\"patient\") = %+v, %t", marker, ok)
	}
	kw, ok := p.CommandKeywordFor("toggle")
	if !ok || kw.Normalized != "toggle" || len(kw.Alternatives) != 1 {
		t.Errorf("CommandKeywordFor(\"toggle\") = %+v, %t", kw, ok)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "es.yaml", yamlProfile)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if p.Code != "es" || p.WordOrder != OrderSVO {
		t.Errorf("loaded profile = %s/%s", p.Code, p.WordOrder)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantCode lokaerror.Code
	}{
		{
			name:     "missing file",
			path:     filepath.Join(dir, "nope.toml"),
			wantCode: lokaerror.CodeProfileLoad,
		},
		{
			name:     "unsupported extension",
			path:     writeFile(t, dir, "en.json", "{}"),
			wantCode: lokaerror.CodeProfileLoad,
		},
		{
			name:     "malformed toml",
			path:     writeFile(t, dir, "bad.toml", "code = ["),
			wantCode: lokaerror.CodeProfileLoad,
		},
		{
			name:     "invalid profile",
			path:     writeFile(t, dir, "inv.toml", "code = \"xx\"\ndirection = \"ltr\"\nword_order = \"XYZ\"\nmarking = \"preposition\""),
			wantCode: lokaerror.CodeInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if err == nil {
				t.Fatal("LoadFile() error = nil, want error")
			}
			if got := lokaerror.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-ja.toml", tomlProfile)
	writeFile(t, dir, "a-es.yaml", yamlProfile)
	writeFile(t, dir, "notes.txt", "ignored")

	profiles, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("loaded %d profiles, want 2", len(profiles))
	}
	// Sorted by file name, so Spanish first
	if profiles[0].Code != "es" || profiles[1].Code != "ja" {
		t.Errorf("profile order = [%s %s], want [es ja]", profiles[0].Code, profiles[1].Code)
	}
}

func TestLoadDirectoryMissing(t *testing.T) {
	if _, err := LoadDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadDirectory() error = nil, want error")
	}
}
