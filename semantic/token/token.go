// File: token.go
// Title: Token and Token Stream Definitions
// Description: Defines the typed token produced by the tokenizer and the
//              restartable token stream the pattern matcher consumes.
//              Tokens are immutable once produced; the stream can be
//              re-scanned against any number of pattern candidates.
// Version: v0.1.0
// Created: 2025-11-16

package token

import (
	"fmt"
	"strings"

	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

// Kind represents the lexical category of a token
type Kind int

const (
	// KindKeyword is a surface form found in the language's keyword table
	KindKeyword Kind = iota

	// KindIdentifier is a plain word or variable reference
	KindIdentifier

	// KindSelector is a CSS-selector-shaped run (.class, #id, [attr])
	KindSelector

	// KindLiteral is a quoted string, number, or URL
	KindLiteral

	// KindOperator is a single punctuation character
	KindOperator
)

// String returns the string representation of the token kind
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindIdentifier:
		return "identifier"
	case KindSelector:
		return "selector"
	case KindLiteral:
		return "literal"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is a single typed token with source position information.
// Tokens are created by the tokenizer and consumed read-only.
type Token struct {
	// Kind is the lexical category
	Kind Kind

	// Text is the surface text. Quoted string literals carry their
	// content without the quotes.
	Text string

	// Normalized is the canonical cross-language form; set only for
	// keyword tokens
	Normalized string

	// Start is the byte offset of the token in the source text
	Start int

	// End is the byte offset just past the token in the source text
	End int
}

// String returns a debug representation of the token
func (t Token) String() string {
	if t.Normalized != "" && t.Normalized != t.Text {
		return fmt.Sprintf("%s(%s→%s)", t.Kind, t.Text, t.Normalized)
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Canonical returns the normalized form when present, else the surface text
func (t Token) Canonical() string {
	if t.Normalized != "" {
		return t.Normalized
	}
	return t.Text
}

// Span is a skipped region of the source text
type Span struct {
	Start int
	End   int
}

// Stream is an ordered, restartable sequence of tokens for one language.
// Offsets are monotonically non-decreasing and cover disjoint regions of
// the source; skipped regions are recorded separately for diagnostics.
type Stream struct {
	language  string
	direction lokaprofile.Direction
	source    string
	tokens    []Token
	skipped   []Span
}

// NewStream creates a token stream. The token slice is owned by the
// stream afterwards.
func NewStream(language string, direction lokaprofile.Direction, source string, tokens []Token, skipped []Span) *Stream {
	return &Stream{
		language:  language,
		direction: direction,
		source:    source,
		tokens:    tokens,
		skipped:   skipped,
	}
}

// Language returns the owning language code
func (s *Stream) Language() string {
	return s.language
}

// Direction returns the writing direction of the owning language
func (s *Stream) Direction() lokaprofile.Direction {
	return s.direction
}

// Source returns the raw text the stream was produced from
func (s *Stream) Source() string {
	return s.source
}

// Len returns the number of tokens in the stream
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i
func (s *Stream) At(i int) Token {
	return s.tokens[i]
}

// Tokens returns a copy of the stream's tokens
func (s *Stream) Tokens() []Token {
	tokens := make([]Token, len(s.tokens))
	copy(tokens, s.tokens)
	return tokens
}

// SkippedSpans returns the source regions the tokenizer skipped without
// emitting a token. Exposed for diagnostics; skipping itself is silent.
func (s *Stream) SkippedSpans() []Span {
	spans := make([]Span, len(s.skipped))
	copy(spans, s.skipped)
	return spans
}

// String returns a debug representation of the stream
func (s *Stream) String() string {
	parts := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s[%s]", s.language, strings.Join(parts, " "))
}
