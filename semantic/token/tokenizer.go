// File: tokenizer.go
// Title: Per-Language Tokenizer
// Description: Converts raw text into a token stream for one language.
//              Character-class recognition (whitespace, selectors, quoted
//              strings, numbers, URLs, variable references, operators) is
//              shared across languages; keyword recognition is driven by
//              the language profile's merged keyword table. Recognizers
//              are tried in a fixed priority order and the cursor never
//              backtracks across an emitted token.
// Version: v0.1.2
// Created: 2025-11-16

package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokalog "github.com/lokascript/semantic-go/core/log"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

// operatorChars are the single-character operator/punctuation tokens
const operatorChars = "(){}<>=+*/!&|,;?@%^~.-"

// Tokenizer converts raw text into token streams for one language
type Tokenizer struct {
	profile *lokaprofile.Profile
	table   *lokaprofile.Table
	logger  *lokalog.Logger
}

// Options configures tokenizer construction
type Options struct {
	// Profile is the language profile the tokenizer derives its
	// keyword dictionary from. Required.
	Profile *lokaprofile.Profile

	// Extras are additional keyword entries merged into the dictionary
	// (boolean/null literals, positional words, event names)
	Extras []lokaprofile.KeywordEntry

	// Logger receives per-scan diagnostics
	Logger *lokalog.Logger
}

// New creates a tokenizer for the given language profile
func New(opts Options) (*Tokenizer, error) {
	if opts.Profile == nil {
		return nil, lokaerror.New("tokenizer requires a language profile").
			WithCode(lokaerror.CodeInvalidInput).
			WithOperation("token.New")
	}
	if err := opts.Profile.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = lokalog.GetDefault()
	}

	return &Tokenizer{
		profile: opts.Profile,
		table:   opts.Profile.KeywordTable(opts.Extras),
		logger:  opts.Logger.WithField("component", "tokenizer").WithField("language", opts.Profile.Code),
	}, nil
}

// Profile returns the tokenizer's language profile
func (t *Tokenizer) Profile() *lokaprofile.Profile {
	return t.profile
}

// Table returns the tokenizer's merged keyword table
func (t *Tokenizer) Table() *lokaprofile.Table {
	return t.table
}

// Tokenize scans the full input text and returns a restartable stream.
// Unrecognized single characters are skipped without emitting a token;
// the skipped spans are recorded on the stream for diagnostics.
func (t *Tokenizer) Tokenize(text string) *Stream {
	var tokens []Token
	var skipped []Span

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// (1) whitespace, for spacing languages
		if t.profile.UsesSpaces && unicode.IsSpace(r) {
			i += size
			continue
		}

		// (2) CSS-selector-shaped runs
		if tok, next, ok := t.scanSelector(text, i, r); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// (3) quoted string literals
		if r == '"' || r == '\'' {
			tok, next := t.scanQuoted(text, i, r)
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// (4) numeric literals, including a leading '-'
		if tok, next, ok := t.scanNumber(text, i, r); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// (5) URL-shaped runs
		if tok, next, ok := t.scanURL(text, i, r); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// (6) variable references (:name)
		if tok, next, ok := t.scanVariableRef(text, i, r); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// (7) single-character operators/punctuation
		if strings.ContainsRune(operatorChars, r) {
			tokens = append(tokens, Token{
				Kind:  KindOperator,
				Text:  string(r),
				Start: i,
				End:   i + size,
			})
			i += size
			continue
		}

		// (8) keyword dictionary longest-match
		if tok, next, ok := t.scanKeyword(text, i); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// (9) identifier fallback
		if isIdentRune(r) {
			tok, next := t.scanIdentifier(text, i)
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// Unrecognized character: skip silently, record the span
		if n := len(skipped); n > 0 && skipped[n-1].End == i {
			skipped[n-1].End = i + size
		} else {
			skipped = append(skipped, Span{Start: i, End: i + size})
		}
		i += size
	}

	if len(skipped) > 0 && t.logger.IsLevelEnabled(lokalog.LevelTrace) {
		t.logger.Trace("tokenizer skipped unrecognized spans", lokalog.Fields{
			"input":   text,
			"skipped": len(skipped),
		})
	}

	return NewStream(t.profile.Code, t.profile.Direction, text, tokens, skipped)
}

// scanSelector recognizes CSS-selector-shaped runs: .class, #id, [attr=v]
func (t *Tokenizer) scanSelector(text string, start int, r rune) (Token, int, bool) {
	switch r {
	case '[':
		// Attribute selector: consume through the closing bracket
		end := strings.IndexRune(text[start:], ']')
		if end < 0 {
			return Token{
				Kind:  KindSelector,
				Text:  text[start:],
				Start: start,
				End:   len(text),
			}, len(text), true
		}
		end = start + end + 1
		return Token{
			Kind:  KindSelector,
			Text:  text[start:end],
			Start: start,
			End:   end,
		}, end, true

	case '.', '#':
		next, size := utf8.DecodeRuneInString(text[start+1:])
		if size == 0 || !isSelectorNameRune(next) {
			return Token{}, 0, false
		}
		i := start + 1
		for i < len(text) {
			sr, sz := utf8.DecodeRuneInString(text[i:])
			if !isSelectorRune(sr) {
				break
			}
			// In unsegmented scripts a trailing particle would read as
			// part of the selector name; stop where a keyword begins.
			if !t.profile.UsesSpaces {
				if _, consumed := t.matchKeywordAt(text, i); consumed > 0 {
					break
				}
			}
			i += sz
		}
		return Token{
			Kind:  KindSelector,
			Text:  text[start:i],
			Start: start,
			End:   i,
		}, i, true
	}

	return Token{}, 0, false
}

// scanQuoted recognizes a quoted string literal. The token text carries
// the content without the surrounding quotes; escaped characters are kept
// verbatim.
func (t *Tokenizer) scanQuoted(text string, start int, quote rune) (Token, int) {
	i := start + utf8.RuneLen(quote)
	contentStart := i

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\\' && i+size < len(text) {
			_, escSize := utf8.DecodeRuneInString(text[i+size:])
			i += size + escSize
			continue
		}
		if r == quote {
			return Token{
				Kind:  KindLiteral,
				Text:  text[contentStart:i],
				Start: start,
				End:   i + size,
			}, i + size
		}
		i += size
	}

	// Unterminated string: take everything to the end of input
	return Token{
		Kind:  KindLiteral,
		Text:  text[contentStart:],
		Start: start,
		End:   len(text),
	}, len(text)
}

// scanNumber recognizes integer and decimal literals with an optional
// leading minus sign
func (t *Tokenizer) scanNumber(text string, start int, r rune) (Token, int, bool) {
	i := start
	if r == '-' {
		next, _ := utf8.DecodeRuneInString(text[start+1:])
		if !unicode.IsDigit(next) {
			return Token{}, 0, false
		}
		i++
	} else if !unicode.IsDigit(r) {
		return Token{}, 0, false
	}

	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i < len(text) && text[i] == '.' && i+1 < len(text) && text[i+1] >= '0' && text[i+1] <= '9' {
		i++
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
	}

	return Token{
		Kind:  KindLiteral,
		Text:  text[start:i],
		Start: start,
		End:   i,
	}, i, true
}

// scanURL recognizes scheme://... runs, consumed until whitespace
func (t *Tokenizer) scanURL(text string, start int, r rune) (Token, int, bool) {
	if !isASCIILetter(r) {
		return Token{}, 0, false
	}

	i := start
	for i < len(text) && isSchemeByte(text[i]) {
		i++
	}
	if i == start || !strings.HasPrefix(text[i:], "://") {
		return Token{}, 0, false
	}

	i += len("://")
	for i < len(text) {
		ur, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(ur) {
			break
		}
		i += size
	}

	return Token{
		Kind:  KindLiteral,
		Text:  text[start:i],
		Start: start,
		End:   i,
	}, i, true
}

// scanVariableRef recognizes :name variable references
func (t *Tokenizer) scanVariableRef(text string, start int, r rune) (Token, int, bool) {
	if r != ':' {
		return Token{}, 0, false
	}
	next, size := utf8.DecodeRuneInString(text[start+1:])
	if size == 0 || !isIdentRune(next) {
		return Token{}, 0, false
	}

	i := start + 1
	for i < len(text) {
		vr, sz := utf8.DecodeRuneInString(text[i:])
		if !isIdentRune(vr) {
			break
		}
		i += sz
	}

	return Token{
		Kind:  KindIdentifier,
		Text:  text[start:i],
		Start: start,
		End:   i,
	}, i, true
}

// scanKeyword attempts a longest-match against the keyword table at the
// given position. For spacing languages the match must end at a word
// boundary so a keyword never splits a longer identifier.
func (t *Tokenizer) scanKeyword(text string, start int) (Token, int, bool) {
	normalized, consumed := t.matchKeywordAt(text, start)
	if consumed == 0 {
		return Token{}, 0, false
	}

	end := start + consumed
	return Token{
		Kind:       KindKeyword,
		Text:       text[start:end],
		Normalized: normalized,
		Start:      start,
		End:        end,
	}, end, true
}

// matchKeywordAt returns the normalized form and byte length of the
// longest keyword match at the position, or ("", 0) when none matches
func (t *Tokenizer) matchKeywordAt(text string, pos int) (string, int) {
	rest := text[pos:]
	for _, entry := range t.table.Entries() {
		consumed, ok := foldPrefixLen(rest, entry.Native)
		if !ok {
			continue
		}
		if t.profile.UsesSpaces && !atWordBoundary(rest, consumed) {
			continue
		}
		return entry.Normalized, consumed
	}
	return "", 0
}

// scanIdentifier consumes a maximal identifier run. For non-spacing
// languages the run additionally stops wherever a keyword match begins,
// so unsegmented text still yields its keywords.
func (t *Tokenizer) scanIdentifier(text string, start int) (Token, int) {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isIdentRune(r) {
			break
		}
		if i > start && !t.profile.UsesSpaces {
			if _, consumed := t.matchKeywordAt(text, i); consumed > 0 {
				break
			}
		}
		i += size
	}

	return Token{
		Kind:  KindIdentifier,
		Text:  text[start:i],
		Start: start,
		End:   i,
	}, i
}

// foldPrefixLen reports whether s begins with a case-insensitive match
// of prefix, returning the number of bytes of s the match consumed
func foldPrefixLen(s, prefix string) (int, bool) {
	consumed := 0
	for _, pr := range prefix {
		sr, size := utf8.DecodeRuneInString(s[consumed:])
		if size == 0 {
			return 0, false
		}
		if sr != pr && unicode.ToLower(sr) != unicode.ToLower(pr) {
			return 0, false
		}
		consumed += size
	}
	return consumed, true
}

// atWordBoundary reports whether the position after a match is a word
// boundary: end of input or a non-identifier rune
func atWordBoundary(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return !isIdentRune(r)
}

// isIdentRune reports whether the rune belongs to the identifier
// class. Combining marks are included so scripts that carry diacritics
// (Arabic, Devanagari) keep their words intact.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' || r == '-'
}

// isSelectorNameRune reports whether the rune can start a class/id name
func isSelectorNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '-'
}

// isSelectorRune reports whether the rune can continue a selector run
func isSelectorRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' || r == '#'
}

// isASCIILetter reports whether the rune is an ASCII letter
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isSchemeByte reports whether the byte may appear in a URL scheme
func isSchemeByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9') || b == '+' || b == '.' || b == '-'
}
