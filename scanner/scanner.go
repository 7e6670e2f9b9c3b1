// File: scanner.go
// Title: Template Scanner
// Description: Scans template files for embedded script snippets and
//              reports which commands, blocks and positional
//              expressions they use, plus the non-English languages
//              they are written in. Snippets are pulled from script
//              attributes, data attributes, template tags and inline
//              script elements.
// Version: v0.1.0
// Created: 2025-11-18

// Package scanner detects script usage in template files so bundles
// can be trimmed to the commands and languages a project actually uses.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokalog "github.com/lokascript/semantic-go/core/log"
)

// extractionPatterns pull script snippets out of template content:
// underscore attributes, JSX expression forms, data attributes,
// template tags and inline script elements
var extractionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`_="([^"]*)"`),
	regexp.MustCompile(`_='([^']*)'`),
	regexp.MustCompile("_=`([^`]*)`"),
	regexp.MustCompile("_=\\{`([^`]+)`\\}"),
	regexp.MustCompile(`_=\{['"]([^'"]+)['"]\}`),
	regexp.MustCompile(`data-hs="([^"]*)"`),
	regexp.MustCompile(`data-hs='([^']*)'`),
	regexp.MustCompile(`(?s)\{%\s*hs\s*%\}(.*?)\{%\s*endhs\s*%\}`),
	regexp.MustCompile(`\{%\s*hs_attr\s+"([^"]+)"\s*%\}`),
	regexp.MustCompile(`\{%\s*hs_attr\s+'([^']+)'\s*%\}`),
	regexp.MustCompile(`\{%\s*hs_script\s+"([^"]+)"\s*%\}`),
	regexp.MustCompile(`\{%\s*hs_script\s+'([^']+)'\s*%\}`),
	regexp.MustCompile(`(?is)<script[^>]*type=["']?text/hyperscript["']?[^>]*>(.*?)</script>`),
}

// commandPattern recognizes the tree-shakeable command vocabulary
var commandPattern = regexp.MustCompile(`(?i)\b(toggle|add|remove|removeClass|show|hide|set|get|put|append|` +
	`take|increment|decrement|log|send|trigger|wait|transition|go|call|` +
	`focus|blur|return)\b`)

// blockPatterns recognize block constructs; unless shares the if block
var blockPatterns = map[string]*regexp.Regexp{
	"if":     regexp.MustCompile(`(?i)\bif\b`),
	"unless": regexp.MustCompile(`(?i)\bunless\b`),
	"repeat": regexp.MustCompile(`(?i)\brepeat\s+(\d+|:\w+|\$\w+|[\w.]+)\s+times?\b`),
	"for":    regexp.MustCompile(`(?i)\bfor\s+(each|every)\b`),
	"while":  regexp.MustCompile(`(?i)\bwhile\b`),
	"fetch":  regexp.MustCompile(`(?i)\bfetch\b`),
	"async":  regexp.MustCompile(`(?i)\basync\b`),
}

// positionalPattern recognizes positional expressions
var positionalPattern = regexp.MustCompile(`(?i)\b(first|last|next|previous|closest|parent)\b`)

// Options configures a scanner
type Options struct {
	// IncludeExtensions lists the file extensions to scan; defaults
	// to common template extensions
	IncludeExtensions []string

	// ExcludePatterns lists path substrings that exclude a file
	ExcludePatterns []string

	// Logger receives per-file diagnostics
	Logger *lokalog.Logger
}

// Scanner detects script usage in template files
type Scanner struct {
	includeExtensions map[string]bool
	excludePatterns   []string
	logger            *lokalog.Logger
}

// New creates a scanner
func New(opts Options) *Scanner {
	extensions := opts.IncludeExtensions
	if len(extensions) == 0 {
		extensions = []string{".html", ".htm", ".txt", ".xml", ".jinja", ".jinja2"}
	}
	excludes := opts.ExcludePatterns
	if len(excludes) == 0 {
		excludes = []string{"__pycache__", ".git", "node_modules", ".venv", "venv", "site-packages"}
	}
	if opts.Logger == nil {
		opts.Logger = lokalog.GetDefault()
	}

	included := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		included[strings.ToLower(ext)] = true
	}

	return &Scanner{
		includeExtensions: included,
		excludePatterns:   excludes,
		logger:            opts.Logger.WithField("component", "scanner"),
	}
}

// ShouldScan reports whether a path is eligible for scanning
func (s *Scanner) ShouldScan(path string) bool {
	if !s.includeExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	for _, pattern := range s.excludePatterns {
		if strings.Contains(path, pattern) {
			return false
		}
	}
	return true
}

// ExtractScripts pulls every script snippet out of template content
func (s *Scanner) ExtractScripts(content string) []string {
	var scripts []string
	for _, pattern := range extractionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			script := strings.TrimSpace(match[1])
			if script != "" {
				scripts = append(scripts, script)
			}
		}
	}
	return scripts
}

// AnalyzeScript inspects one snippet for commands, blocks, positional
// expressions and languages
func (s *Scanner) AnalyzeScript(script string) *FileUsage {
	usage := NewFileUsage()

	for _, match := range commandPattern.FindAllStringSubmatch(script, -1) {
		usage.Commands[strings.ToLower(match[1])] = true
	}

	for name, pattern := range blockPatterns {
		if pattern.MatchString(script) {
			if name == "unless" {
				usage.Blocks["if"] = true
			} else {
				usage.Blocks[name] = true
			}
		}
	}

	if positionalPattern.MatchString(script) {
		usage.Positional = true
	}

	usage.Languages = DetectLanguages(script)
	return usage
}

// ScanContent scans raw template content
func (s *Scanner) ScanContent(content string) *FileUsage {
	usage := NewFileUsage()
	for _, script := range s.ExtractScripts(content) {
		usage.Merge(s.AnalyzeScript(script))
	}
	return usage
}

// ScanFile scans a single file
func (s *Scanner) ScanFile(path string) (*FileUsage, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, lokaerror.Wrap(err, "reading template file").
			WithCode(lokaerror.CodeScanFailure).
			WithOperation("scanner.ScanFile").
			WithDetail("path", path)
	}

	usage := s.ScanContent(string(content))
	if usage.Any() {
		s.logger.Debug("template scanned", lokalog.Fields{
			"path":     path,
			"commands": usage.CommandList(),
			"blocks":   usage.BlockList(),
		})
	}
	return usage, nil
}

// ScanDirectory walks a directory tree and scans every eligible file.
// Unreadable files are logged and skipped rather than aborting the walk.
func (s *Scanner) ScanDirectory(dir string) (*AggregatedUsage, error) {
	aggregate := NewAggregatedUsage()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return aggregate, nil
	}

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !s.ShouldScan(path) {
			return nil
		}

		usage, err := s.ScanFile(path)
		if err != nil {
			s.logger.WarnWithErr("skipping unreadable template", err, lokalog.Fields{"path": path})
			return nil
		}
		if usage.Any() {
			aggregate.Add(path, usage)
		}
		return nil
	})
	if walkErr != nil {
		return nil, lokaerror.Wrap(walkErr, "walking template directory").
			WithCode(lokaerror.CodeScanFailure).
			WithOperation("scanner.ScanDirectory").
			WithDetail("dir", dir)
	}

	return aggregate, nil
}

// ScanDirectories scans multiple directory trees into one aggregate
func (s *Scanner) ScanDirectories(dirs []string) (*AggregatedUsage, error) {
	aggregate := NewAggregatedUsage()
	for _, dir := range dirs {
		partial, err := s.ScanDirectory(dir)
		if err != nil {
			return nil, err
		}
		for path, usage := range partial.Files {
			aggregate.Add(path, usage)
		}
	}
	return aggregate, nil
}
