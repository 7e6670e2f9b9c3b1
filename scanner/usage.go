// File: usage.go
// Title: Usage Records
// Description: Result types for template scanning: per-file usage and
//              the aggregate across a scan run.
// Version: v0.1.0
// Created: 2025-11-18

package scanner

import "sort"

// FileUsage is the usage detected in a single file
type FileUsage struct {
	// Commands holds the detected command names, lowercased
	Commands map[string]bool `json:"-"`

	// Blocks holds the detected block constructs
	Blocks map[string]bool `json:"-"`

	// Positional reports whether positional expressions appear
	Positional bool `json:"positional"`

	// Languages holds the detected non-English language codes
	Languages map[string]bool `json:"-"`
}

// NewFileUsage creates an empty usage record
func NewFileUsage() *FileUsage {
	return &FileUsage{
		Commands:  make(map[string]bool),
		Blocks:    make(map[string]bool),
		Languages: make(map[string]bool),
	}
}

// Any reports whether any usage was detected
func (u *FileUsage) Any() bool {
	return len(u.Commands) > 0 || len(u.Blocks) > 0 || u.Positional || len(u.Languages) > 0
}

// Merge folds another usage record into this one
func (u *FileUsage) Merge(other *FileUsage) {
	for cmd := range other.Commands {
		u.Commands[cmd] = true
	}
	for block := range other.Blocks {
		u.Blocks[block] = true
	}
	if other.Positional {
		u.Positional = true
	}
	for lang := range other.Languages {
		u.Languages[lang] = true
	}
}

// CommandList returns the detected commands in sorted order
func (u *FileUsage) CommandList() []string { return sortedKeys(u.Commands) }

// BlockList returns the detected blocks in sorted order
func (u *FileUsage) BlockList() []string { return sortedKeys(u.Blocks) }

// LanguageList returns the detected languages in sorted order
func (u *FileUsage) LanguageList() []string { return sortedKeys(u.Languages) }

// Report is the serializable form of a usage record
type Report struct {
	Commands   []string `json:"commands"`
	Blocks     []string `json:"blocks"`
	Positional bool     `json:"positional"`
	Languages  []string `json:"detected_languages"`
}

// Report converts the usage record to its serializable form
func (u *FileUsage) Report() Report {
	return Report{
		Commands:   u.CommandList(),
		Blocks:     u.BlockList(),
		Positional: u.Positional,
		Languages:  u.LanguageList(),
	}
}

// AggregatedUsage is the usage across every scanned file
type AggregatedUsage struct {
	Total *FileUsage
	Files map[string]*FileUsage
}

// NewAggregatedUsage creates an empty aggregate
func NewAggregatedUsage() *AggregatedUsage {
	return &AggregatedUsage{
		Total: NewFileUsage(),
		Files: make(map[string]*FileUsage),
	}
}

// Add records a file's usage into the aggregate
func (a *AggregatedUsage) Add(path string, usage *FileUsage) {
	a.Files[path] = usage
	a.Total.Merge(usage)
}

// AggregateReport is the serializable form of an aggregate
type AggregateReport struct {
	Commands   []string `json:"commands"`
	Blocks     []string `json:"blocks"`
	Positional bool     `json:"positional"`
	FileCount  int      `json:"file_count"`
	Languages  []string `json:"detected_languages"`
	Region     string   `json:"region,omitempty"`
}

// Report converts the aggregate to its serializable form, including
// the optimal regional bundle for the detected languages
func (a *AggregatedUsage) Report() AggregateReport {
	return AggregateReport{
		Commands:   a.Total.CommandList(),
		Blocks:     a.Total.BlockList(),
		Positional: a.Total.Positional,
		FileCount:  len(a.Files),
		Languages:  a.Total.LanguageList(),
		Region:     OptimalRegion(a.Total.Languages),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
