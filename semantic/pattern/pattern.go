// File: pattern.go
// Title: Language Pattern Definitions
// Description: Declarative matching templates for one (language, command)
//              pair. A pattern pairs a token template (literals, role
//              slots, optional groups) with extraction rules that pull
//              semantic role values out of a matched token stream.
// Version: v0.1.0
// Created: 2025-11-16

package pattern

import (
	"strings"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

// TemplateToken is one element of a pattern template. Implementations
// are Literal, Role and Group; the interface is sealed.
type TemplateToken interface {
	templateToken()
}

// Literal matches a token whose canonical form equals the value or one
// of its alternatives, compared case-insensitively.
type Literal struct {
	Value        string
	Alternatives []string
}

func (Literal) templateToken() {}

// Matches reports whether the canonical token text satisfies the literal
func (l Literal) Matches(canonical string) bool {
	if strings.EqualFold(canonical, l.Value) {
		return true
	}
	for _, alt := range l.Alternatives {
		if strings.EqualFold(canonical, alt) {
			return true
		}
	}
	return false
}

// Role is a slot binding one or more input tokens to a semantic role
// such as "patient" or "destination"
type Role struct {
	Name string
}

func (Role) templateToken() {}

// Group is a nested sub-template. Optional groups may be absent from
// the input entirely; required groups must match in full.
type Group struct {
	Optional bool
	Tokens   []TemplateToken
}

func (Group) templateToken() {}

// ExtractionRule resolves one semantic role from a matched token
// stream. Implementations are ByPosition, ByMarker and ByDefault; the
// interface is sealed.
type ExtractionRule interface {
	extractionRule()
}

// ByPosition takes the token at a fixed index of the full token stream
type ByPosition struct {
	Index int
}

func (ByPosition) extractionRule() {}

// ByMarker locates a grammatical marker word in the stream and takes
// the adjacent token. Position states where the marker sits relative
// to its value: a preposition ("on X") is MarkerBefore, a postposition
// or particle ("Xを") is MarkerAfter. When the marker is absent the
// Default value is used instead; an empty Default leaves the role
// unbound.
type ByMarker struct {
	Word         string
	Alternatives []string
	Position     lokaprofile.MarkerPosition
	Default      string
}

func (ByMarker) extractionRule() {}

// matchesMarker reports whether the canonical token text is this
// rule's marker word
func (m ByMarker) matchesMarker(canonical string) bool {
	if strings.EqualFold(canonical, m.Word) {
		return true
	}
	for _, alt := range m.Alternatives {
		if strings.EqualFold(canonical, alt) {
			return true
		}
	}
	return false
}

// ByDefault binds the role to a fixed value regardless of the input
type ByDefault struct {
	Value string
}

func (ByDefault) extractionRule() {}

// Pattern is one matching template for a (language, command) pair
type Pattern struct {
	// ID identifies the pattern; the registry assigns one when blank
	ID string

	// Language is the profile code the pattern belongs to
	Language string

	// Command is the normalized command the pattern recognizes
	Command string

	// Priority orders candidates; higher priorities are tried first.
	// Ties keep registration order.
	Priority int

	// Template is the token sequence the input must satisfy in full
	Template []TemplateToken

	// Extraction maps role names to their resolution rules. Roles
	// without a rule take the tokens their template slot consumed.
	Extraction map[string]ExtractionRule
}

// Validate checks the pattern for structural problems
func (p *Pattern) Validate() error {
	if strings.TrimSpace(p.Language) == "" {
		return lokaerror.New("pattern has no language").
			WithCode(lokaerror.CodeInvalidPattern).
			WithDetail("pattern_id", p.ID)
	}
	if strings.TrimSpace(p.Command) == "" {
		return lokaerror.New("pattern has no command").
			WithCode(lokaerror.CodeInvalidPattern).
			WithDetail("pattern_id", p.ID).
			WithDetail("language", p.Language)
	}
	if len(p.Template) == 0 {
		return lokaerror.New("pattern has an empty template").
			WithCode(lokaerror.CodeInvalidPattern).
			WithDetail("pattern_id", p.ID).
			WithDetail("language", p.Language).
			WithDetail("command", p.Command)
	}
	return validateTemplate(p, p.Template)
}

func validateTemplate(p *Pattern, tokens []TemplateToken) error {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Literal:
			if strings.TrimSpace(t.Value) == "" {
				return lokaerror.New("pattern literal has no value").
					WithCode(lokaerror.CodeInvalidPattern).
					WithDetail("pattern_id", p.ID).
					WithDetail("command", p.Command)
			}
		case Role:
			if strings.TrimSpace(t.Name) == "" {
				return lokaerror.New("pattern role has no name").
					WithCode(lokaerror.CodeInvalidPattern).
					WithDetail("pattern_id", p.ID).
					WithDetail("command", p.Command)
			}
		case Group:
			if len(t.Tokens) == 0 {
				return lokaerror.New("pattern group is empty").
					WithCode(lokaerror.CodeInvalidPattern).
					WithDetail("pattern_id", p.ID).
					WithDetail("command", p.Command)
			}
			if err := validateTemplate(p, t.Tokens); err != nil {
				return err
			}
		default:
			return lokaerror.New("pattern template has an unknown token type").
				WithCode(lokaerror.CodeInvalidPattern).
				WithDetail("pattern_id", p.ID).
				WithDetail("command", p.Command)
		}
	}
	return nil
}

// Roles lists the role names appearing in the template, outermost
// first, groups included
func (p *Pattern) Roles() []string {
	var roles []string
	var walk func(tokens []TemplateToken)
	walk = func(tokens []TemplateToken) {
		for _, tok := range tokens {
			switch t := tok.(type) {
			case Role:
				roles = append(roles, t.Name)
			case Group:
				walk(t.Tokens)
			}
		}
	}
	walk(p.Template)
	return roles
}

// Render generates a surface form of the command from role values by
// walking the template in order. Optional groups whose roles have no
// value are dropped; a required role without a value is an error.
// Pieces are joined with the separator, which is a single space for
// spacing languages and empty for unsegmented scripts. The literal
// function maps template literal values to their surface spelling —
// command literals are stored normalized, so callers translate them
// back to the language's native word; nil keeps values as written.
func (p *Pattern) Render(roles map[string]string, separator string, literal func(string) string) (string, error) {
	if literal == nil {
		literal = func(value string) string { return value }
	}
	pieces, err := renderTokens(p, p.Template, roles, literal, false)
	if err != nil {
		return "", err
	}
	return strings.Join(pieces, separator), nil
}

func renderTokens(p *Pattern, tokens []TemplateToken, roles map[string]string, literal func(string) string, optional bool) ([]string, error) {
	var pieces []string
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Literal:
			pieces = append(pieces, literal(t.Value))
		case Role:
			value, ok := roles[t.Name]
			if !ok || value == "" {
				if optional {
					return nil, errRoleUnbound
				}
				return nil, lokaerror.Newf("no value for role %q", t.Name).
					WithCode(lokaerror.CodeInvalidInput).
					WithDetail("pattern_id", p.ID).
					WithDetail("command", p.Command)
			}
			pieces = append(pieces, value)
		case Group:
			inner, err := renderTokens(p, t.Tokens, roles, literal, optional || t.Optional)
			if err != nil {
				if t.Optional && err == errRoleUnbound {
					continue
				}
				return nil, err
			}
			pieces = append(pieces, inner...)
		}
	}
	return pieces, nil
}

// errRoleUnbound is a sentinel for dropping optional groups during render
var errRoleUnbound = lokaerror.New("role unbound").WithCode(lokaerror.CodeInvalidInput)
