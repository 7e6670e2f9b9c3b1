// File: keywords.go
// Title: Keyword Dictionary Construction
// Description: Builds the merged keyword table for a language from its
//              profile: command keywords, role markers, references, and
//              extra entries. Entries are ordered longest-native-first so
//              that matching never lets a short keyword shadow a longer
//              one sharing its prefix.
// Version: v0.1.1
// Created: 2025-11-15

package profile

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Table is the merged, immutable keyword dictionary of one language.
// Entries are sorted by descending native length so that iteration order
// implements longest-match directly.
type Table struct {
	entries []KeywordEntry
	index   map[string]string // lowercased native -> normalized
}

// NewTable builds a keyword table from the given entry sets. Later sets
// do not override earlier ones: the first normalized form registered for
// a surface string wins.
func NewTable(entrySets ...[]KeywordEntry) *Table {
	index := make(map[string]string)
	var entries []KeywordEntry

	for _, set := range entrySets {
		for _, entry := range set {
			if entry.Native == "" || entry.Normalized == "" {
				continue
			}
			key := strings.ToLower(entry.Native)
			if _, exists := index[key]; exists {
				continue
			}
			index[key] = entry.Normalized
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		li := utf8.RuneCountInString(entries[i].Native)
		lj := utf8.RuneCountInString(entries[j].Native)
		if li != lj {
			return li > lj
		}
		return entries[i].Native < entries[j].Native
	})

	return &Table{
		entries: entries,
		index:   index,
	}
}

// KeywordTable builds the authoritative keyword table for the profile,
// merging command keywords, role markers, references, extras declared in
// the profile, and any additional entry sets supplied by the caller.
func (p *Profile) KeywordTable(extra ...[]KeywordEntry) *Table {
	// Maps are walked in sorted key order so the first-registration-wins
	// dedup in NewTable resolves surface-form collisions the same way on
	// every run.
	var commands []KeywordEntry
	for _, name := range sortedKeys(p.Keywords) {
		kw := p.Keywords[name]
		commands = append(commands, KeywordEntry{Native: kw.Primary, Normalized: kw.Normalized})
		for _, alt := range kw.Alternatives {
			commands = append(commands, KeywordEntry{Native: alt, Normalized: kw.Normalized})
		}
	}

	// Role markers normalize to their primary surface form so that
	// pattern literals written with the primary marker match any of
	// the alternatives
	var markers []KeywordEntry
	for _, role := range sortedKeys(p.RoleMarkers) {
		marker := p.RoleMarkers[role]
		markers = append(markers, KeywordEntry{Native: marker.Primary, Normalized: marker.Primary})
		for _, alt := range marker.Alternatives {
			markers = append(markers, KeywordEntry{Native: alt, Normalized: marker.Primary})
		}
	}

	var references []KeywordEntry
	for _, name := range sortedKeys(p.References) {
		references = append(references, KeywordEntry{Native: p.References[name], Normalized: name})
	}

	sets := [][]KeywordEntry{commands, markers, references, p.Extras}
	sets = append(sets, extra...)
	return NewTable(sets...)
}

// sortedKeys returns the map's keys in ascending order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the table's entries in longest-native-first order.
// The returned slice must not be modified.
func (t *Table) Entries() []KeywordEntry {
	return t.entries
}

// Len returns the number of entries in the table
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the normalized form for an exact, case-insensitive
// match of the given surface string
func (t *Table) Lookup(surface string) (string, bool) {
	normalized, ok := t.index[strings.ToLower(surface)]
	return normalized, ok
}

// IsKeyword returns true if the surface string is an exact,
// case-insensitive match for a table entry
func (t *Table) IsKeyword(surface string) bool {
	_, ok := t.Lookup(surface)
	return ok
}
