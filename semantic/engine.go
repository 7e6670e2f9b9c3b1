// File: engine.go
// Title: Semantic Command Engine
// Description: Public entry point tying the registry, tokenizers and
//              matcher together. The engine resolves natural-language
//              command text into language-independent command records
//              and renders records back into a language's surface form.
// Version: v0.1.0
// Created: 2025-11-17

package semantic

import (
	"strings"

	"github.com/google/uuid"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokalog "github.com/lokascript/semantic-go/core/log"
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
	lokaregistry "github.com/lokascript/semantic-go/semantic/registry"
	lokatoken "github.com/lokascript/semantic-go/semantic/token"
)

// MaxInputLength caps the length of command text accepted by the
// engine, in bytes
const MaxInputLength = 4096

// Command is a resolved, language-independent command record
type Command struct {
	// ID uniquely identifies this resolution
	ID string `json:"id"`

	// Language is the profile code the input was parsed as
	Language string `json:"language"`

	// Action is the normalized command name
	Action string `json:"action"`

	// Roles maps semantic role names to their extracted values
	Roles map[string]string `json:"roles,omitempty"`

	// PatternID identifies the pattern that produced the match
	PatternID string `json:"pattern_id,omitempty"`

	// Source is the original input text
	Source string `json:"source"`
}

// Role returns a role value, with ok reporting whether it was bound
func (c *Command) Role(name string) (string, bool) {
	value, ok := c.Roles[name]
	return value, ok
}

// Options configures engine construction
type Options struct {
	// Logger is used by the engine and its components; defaults to
	// the process logger
	Logger *lokalog.Logger
}

// Engine resolves command text across registered languages
type Engine struct {
	registry *lokaregistry.Registry
	matcher  *lokapattern.Matcher
	logger   *lokalog.Logger
}

// New creates an engine with no languages registered
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = lokalog.GetDefault()
	}
	return &Engine{
		registry: lokaregistry.New(lokaregistry.Options{Logger: opts.Logger}),
		matcher:  lokapattern.NewMatcher(lokapattern.Options{Logger: opts.Logger}),
		logger:   opts.Logger.WithField("component", "engine"),
	}
}

// Registry exposes the engine's registry
func (e *Engine) Registry() *lokaregistry.Registry {
	return e.registry
}

// RegisterLanguage registers a language profile, replacing any
// previous registration for the same code
func (e *Engine) RegisterLanguage(prof *lokaprofile.Profile, extras ...lokaprofile.KeywordEntry) error {
	return e.registry.RegisterLanguage(prof, extras...)
}

// RegisterPatterns appends patterns for their (language, command) pairs
func (e *Engine) RegisterPatterns(patterns ...*lokapattern.Pattern) error {
	return e.registry.RegisterPatterns(patterns...)
}

// Tokenize runs a registered language's tokenizer over the text
func (e *Engine) Tokenize(language, text string) (*lokatoken.Stream, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}
	return e.registry.Tokenize(language, text)
}

// Match resolves text against the patterns of one specific command.
// The boolean reports whether any pattern matched; a false result with
// a nil error means the tokens fit no template for that command, which
// is recoverable — the caller may try another command.
func (e *Engine) Match(language, command, text string) (*Command, bool, error) {
	if err := checkInput(text); err != nil {
		return nil, false, err
	}

	candidates, err := e.registry.Patterns(language, command)
	if err != nil {
		return nil, false, err
	}
	stream, err := e.registry.Tokenize(language, text)
	if err != nil {
		return nil, false, err
	}

	result, ok := e.matcher.Match(candidates, stream)
	if !ok {
		return nil, false, nil
	}
	return e.record(text, stream, result), true, nil
}

// Resolve tokenizes the text once and tries each candidate command in
// the given order, returning the first match. With no candidates
// given, every command registered for the language is tried in sorted
// order. When nothing matches the error carries a parse-failure code.
func (e *Engine) Resolve(language, text string, candidateCommands ...string) (*Command, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	stream, err := e.registry.Tokenize(language, text)
	if err != nil {
		return nil, err
	}

	commands := candidateCommands
	if len(commands) == 0 {
		commands = e.registry.Commands(language)
	}

	for _, command := range commands {
		candidates, err := e.registry.Patterns(language, command)
		if err != nil {
			// A candidate command with no patterns is a no-match for
			// that command, not a failure of the whole resolution.
			if lokaerror.HasCode(err, lokaerror.CodeCommandNotSupported) {
				continue
			}
			return nil, err
		}
		if result, ok := e.matcher.Match(candidates, stream); ok {
			return e.record(text, stream, result), nil
		}
	}

	failure := lokaerror.Newf("no command matched input for language %q", language).
		WithCode(lokaerror.CodeParseFailure).
		WithOperation("engine.Resolve").
		WithDetail("language", language).
		WithDetail("input", text).
		WithDetail("tokens", stream.Len()).
		WithDetail("candidates", len(commands))
	if skipped := stream.SkippedSpans(); len(skipped) > 0 {
		failure = failure.WithDetail("skipped_spans", len(skipped))
	}
	return nil, failure
}

func (e *Engine) record(text string, stream *lokatoken.Stream, result *lokapattern.Result) *Command {
	cmd := &Command{
		ID:        uuid.NewString(),
		Language:  stream.Language(),
		Action:    result.Command,
		Roles:     result.Roles,
		PatternID: result.Pattern.ID,
		Source:    text,
	}
	e.logger.Debug("command resolved", lokalog.Fields{
		"language":   cmd.Language,
		"action":     cmd.Action,
		"pattern_id": cmd.PatternID,
	})
	return cmd
}

// Render generates a surface form of a command in a target language
// from role values, using the highest-priority pattern registered for
// the (language, command) pair
func (e *Engine) Render(language, command string, roles map[string]string) (string, error) {
	candidates, err := e.registry.Patterns(language, command)
	if err != nil {
		return "", err
	}
	prof, err := e.registry.Profile(language)
	if err != nil {
		return "", err
	}

	best := candidates[0]
	for _, p := range candidates[1:] {
		if p.Priority > best.Priority {
			best = p
		}
	}

	separator := ""
	if prof.UsesSpaces {
		separator = " "
	}
	// Command literals are stored normalized; render them back to the
	// language's native spelling.
	literal := func(value string) string {
		if kw, ok := prof.Keywords[value]; ok {
			return kw.Primary
		}
		return value
	}
	return best.Render(roles, separator, literal)
}

// checkInput validates raw command text before tokenization
func checkInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return lokaerror.New("input is empty").
			WithCode(lokaerror.CodeEmptyInput)
	}
	if len(text) > MaxInputLength {
		return lokaerror.Newf("input exceeds %d bytes", MaxInputLength).
			WithCode(lokaerror.CodeInputTooLong).
			WithDetail("length", len(text))
	}
	return nil
}
