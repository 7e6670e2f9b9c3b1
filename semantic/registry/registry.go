// File: registry.go
// Title: Language and Pattern Registry
// Description: Concurrency-safe store binding language codes to their
//              tokenizer and profile, and (language, command) pairs to
//              their pattern lists. Re-registering a language replaces
//              the previous entry; registering patterns appends, so
//              registration order is stable for priority tie-breaks.
// Version: v0.1.0
// Created: 2025-11-17

package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokalog "github.com/lokascript/semantic-go/core/log"
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
	lokatoken "github.com/lokascript/semantic-go/semantic/token"
)

// languageEntry pairs a profile with its derived tokenizer
type languageEntry struct {
	profile   *lokaprofile.Profile
	tokenizer *lokatoken.Tokenizer
}

// Options configures registry construction
type Options struct {
	// Logger receives registration diagnostics
	Logger *lokalog.Logger
}

// Registry stores registered languages and their patterns
type Registry struct {
	mu        sync.RWMutex
	languages map[string]*languageEntry
	patterns  map[string]map[string][]*lokapattern.Pattern
	logger    *lokalog.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = lokalog.GetDefault()
	}
	return &Registry{
		languages: make(map[string]*languageEntry),
		patterns:  make(map[string]map[string][]*lokapattern.Pattern),
		logger:    opts.Logger.WithField("component", "registry"),
	}
}

// RegisterLanguage registers a language profile and builds its
// tokenizer. Registering a code again replaces the previous entry;
// patterns already registered for the code are kept.
func (r *Registry) RegisterLanguage(prof *lokaprofile.Profile, extras ...lokaprofile.KeywordEntry) error {
	if prof == nil {
		return lokaerror.New("cannot register a nil profile").
			WithCode(lokaerror.CodeInvalidProfile).
			WithOperation("registry.RegisterLanguage")
	}

	tokenizer, err := lokatoken.New(lokatoken.Options{
		Profile: prof,
		Extras:  extras,
		Logger:  r.logger,
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code := strings.ToLower(prof.Code)
	if _, replaced := r.languages[code]; replaced {
		r.logger.Debug("replacing registered language", lokalog.Fields{"language": code})
	}
	r.languages[code] = &languageEntry{profile: prof, tokenizer: tokenizer}
	return nil
}

// RegisterPatterns validates and appends patterns for their
// (language, command) pairs. Patterns without an ID are assigned one.
// The language must already be registered.
func (r *Registry) RegisterPatterns(patterns ...*lokapattern.Pattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range patterns {
		if p == nil {
			return lokaerror.New("cannot register a nil pattern").
				WithCode(lokaerror.CodeInvalidPattern).
				WithOperation("registry.RegisterPatterns")
		}
		if err := p.Validate(); err != nil {
			return err
		}

		lang := strings.ToLower(p.Language)
		if _, ok := r.languages[lang]; !ok {
			return lokaerror.Newf("language %q is not registered", p.Language).
				WithCode(lokaerror.CodeLanguageNotSupported).
				WithOperation("registry.RegisterPatterns").
				WithDetail("language", p.Language).
				WithDetail("command", p.Command)
		}

		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		byCommand, ok := r.patterns[lang]
		if !ok {
			byCommand = make(map[string][]*lokapattern.Pattern)
			r.patterns[lang] = byCommand
		}
		cmd := strings.ToLower(p.Command)
		byCommand[cmd] = append(byCommand[cmd], p)
	}
	return nil
}

// Tokenizer returns the tokenizer for a language
func (r *Registry) Tokenizer(language string) (*lokatoken.Tokenizer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.languages[strings.ToLower(language)]
	if !ok {
		return nil, r.notSupported(language)
	}
	return entry.tokenizer, nil
}

// Profile returns the profile for a language
func (r *Registry) Profile(language string) (*lokaprofile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.languages[strings.ToLower(language)]
	if !ok {
		return nil, r.notSupported(language)
	}
	return entry.profile, nil
}

// Tokenize runs a language's tokenizer over the text
func (r *Registry) Tokenize(language, text string) (*lokatoken.Stream, error) {
	tokenizer, err := r.Tokenizer(language)
	if err != nil {
		return nil, err
	}
	return tokenizer.Tokenize(text), nil
}

// Patterns returns the patterns registered for a (language, command)
// pair in registration order
func (r *Registry) Patterns(language, command string) ([]*lokapattern.Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang := strings.ToLower(language)
	if _, ok := r.languages[lang]; !ok {
		return nil, r.notSupported(language)
	}

	candidates := r.patterns[lang][strings.ToLower(command)]
	if len(candidates) == 0 {
		return nil, lokaerror.Newf("command %q has no patterns for language %q", command, language).
			WithCode(lokaerror.CodeCommandNotSupported).
			WithDetail("language", language).
			WithDetail("command", command)
	}

	out := make([]*lokapattern.Pattern, len(candidates))
	copy(out, candidates)
	return out, nil
}

// PatternsForLanguage returns every pattern registered for a language,
// grouped by command in sorted command order, registration order
// within each command
func (r *Registry) PatternsForLanguage(language string) ([]*lokapattern.Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang := strings.ToLower(language)
	if _, ok := r.languages[lang]; !ok {
		return nil, r.notSupported(language)
	}

	byCommand := r.patterns[lang]
	commands := make([]string, 0, len(byCommand))
	for cmd := range byCommand {
		commands = append(commands, cmd)
	}
	sort.Strings(commands)

	var out []*lokapattern.Pattern
	for _, cmd := range commands {
		out = append(out, byCommand[cmd]...)
	}
	return out, nil
}

// Languages lists the registered language codes in sorted order
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.languages))
	for code := range r.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Commands lists the commands with patterns for a language, sorted
func (r *Registry) Commands(language string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byCommand := r.patterns[strings.ToLower(language)]
	commands := make([]string, 0, len(byCommand))
	for cmd := range byCommand {
		commands = append(commands, cmd)
	}
	sort.Strings(commands)
	return commands
}

// HasLanguage reports whether a language is registered
func (r *Registry) HasLanguage(language string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.languages[strings.ToLower(language)]
	return ok
}

func (r *Registry) notSupported(language string) error {
	return lokaerror.Newf("language %q is not supported", language).
		WithCode(lokaerror.CodeLanguageNotSupported).
		WithDetail("language", language)
}
