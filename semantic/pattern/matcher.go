// File: matcher.go
// Title: Pattern Matcher
// Description: Matches token streams against pattern templates with
//              backtracking over optional groups and multi-token role
//              slots. Candidates are tried by descending priority with
//              registration order breaking ties; a match must consume
//              the whole input. A structural match is followed by role
//              extraction to produce the final command record.
// Version: v0.1.0
// Created: 2025-11-16

package pattern

import (
	"sort"

	lokalog "github.com/lokascript/semantic-go/core/log"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
	lokatoken "github.com/lokascript/semantic-go/semantic/token"
)

// Result is a successful match: the normalized command and its
// extracted semantic roles
type Result struct {
	Command string
	Roles   map[string]string
	Pattern *Pattern
}

// Options configures matcher construction
type Options struct {
	// Logger receives per-match diagnostics
	Logger *lokalog.Logger
}

// Matcher matches token streams against registered patterns
type Matcher struct {
	logger *lokalog.Logger
}

// NewMatcher creates a matcher
func NewMatcher(opts Options) *Matcher {
	if opts.Logger == nil {
		opts.Logger = lokalog.GetDefault()
	}
	return &Matcher{
		logger: opts.Logger.WithField("component", "matcher"),
	}
}

// Match tries the candidate patterns against the stream and returns
// the first successful result. Candidates are ordered by descending
// priority; patterns of equal priority keep their registration order.
// The boolean reports whether any candidate matched.
func (m *Matcher) Match(candidates []*Pattern, stream *lokatoken.Stream) (*Result, bool) {
	if stream == nil || stream.Len() == 0 || len(candidates) == 0 {
		return nil, false
	}

	ordered := make([]*Pattern, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	tokens := stream.Tokens()
	for _, p := range ordered {
		bindings, ok := m.matchTemplate(p, tokens)
		if !ok {
			continue
		}

		roles := m.extract(p, stream, tokens, bindings)
		if m.logger.IsLevelEnabled(lokalog.LevelDebug) {
			m.logger.Debug("pattern matched", lokalog.Fields{
				"pattern_id": p.ID,
				"language":   p.Language,
				"command":    p.Command,
				"roles":      len(roles),
			})
		}
		return &Result{
			Command: p.Command,
			Roles:   roles,
			Pattern: p,
		}, true
	}

	return nil, false
}

// matchTemplate attempts a structural match of the full token slice
// against the pattern template, returning the tokens each role slot
// consumed
func (m *Matcher) matchTemplate(p *Pattern, tokens []lokatoken.Token) (map[string][]lokatoken.Token, bool) {
	bindings := make(map[string][]lokatoken.Token)
	ok := matchSeq(tokens, 0, p.Template, bindings, func(pos int) bool {
		return pos == len(tokens)
	})
	if !ok {
		return nil, false
	}
	return bindings, true
}

// matchSeq matches the template sequence starting at token position
// pos, calling cont with the position after the sequence. Branches
// that fail undo their role bindings before returning.
func matchSeq(tokens []lokatoken.Token, pos int, tmpl []TemplateToken, bindings map[string][]lokatoken.Token, cont func(pos int) bool) bool {
	if len(tmpl) == 0 {
		return cont(pos)
	}

	rest := tmpl[1:]
	switch t := tmpl[0].(type) {
	case Literal:
		if pos >= len(tokens) || !t.Matches(tokens[pos].Canonical()) {
			return false
		}
		return matchSeq(tokens, pos+1, rest, bindings, cont)

	case Role:
		// When the slot is followed by a literal the role spans every
		// token up to an occurrence of that literal; otherwise it binds
		// exactly one token.
		if lit, followed := nextLiteral(rest); followed {
			for end := pos + 1; end <= len(tokens); end++ {
				if end == len(tokens) || !lit.Matches(tokens[end].Canonical()) {
					continue
				}
				if bindRole(bindings, t.Name, tokens[pos:end]) {
					if matchSeq(tokens, end, rest, bindings, cont) {
						return true
					}
					delete(bindings, t.Name)
				}
			}
			return false
		}
		if pos >= len(tokens) {
			return false
		}
		if !bindRole(bindings, t.Name, tokens[pos:pos+1]) {
			return false
		}
		if matchSeq(tokens, pos+1, rest, bindings, cont) {
			return true
		}
		delete(bindings, t.Name)
		return false

	case Group:
		inner := func(p int) bool {
			return matchSeq(tokens, p, rest, bindings, cont)
		}
		if matchSeq(tokens, pos, t.Tokens, bindings, inner) {
			return true
		}
		if t.Optional {
			return matchSeq(tokens, pos, rest, bindings, cont)
		}
		return false
	}

	return false
}

// nextLiteral returns the literal a role slot is delimited by: the
// immediately following template element when it is a Literal
func nextLiteral(tmpl []TemplateToken) (Literal, bool) {
	if len(tmpl) == 0 {
		return Literal{}, false
	}
	lit, ok := tmpl[0].(Literal)
	return lit, ok
}

// bindRole records a role binding; a role already bound by an earlier
// slot in the same branch rejects the rebind
func bindRole(bindings map[string][]lokatoken.Token, name string, toks []lokatoken.Token) bool {
	if len(toks) == 0 {
		return false
	}
	if _, exists := bindings[name]; exists {
		return false
	}
	bindings[name] = toks
	return true
}

// extract resolves the final role values. Template bindings seed the
// result; extraction rules override them.
func (m *Matcher) extract(p *Pattern, stream *lokatoken.Stream, tokens []lokatoken.Token, bindings map[string][]lokatoken.Token) map[string]string {
	roles := make(map[string]string, len(bindings)+len(p.Extraction))

	for name, toks := range bindings {
		roles[name] = roleValue(stream, toks)
	}

	for name, rule := range p.Extraction {
		switch r := rule.(type) {
		case ByPosition:
			if r.Index >= 0 && r.Index < len(tokens) {
				roles[name] = tokens[r.Index].Canonical()
			}

		case ByDefault:
			roles[name] = r.Value

		case ByMarker:
			idx := -1
			for i, tok := range tokens {
				if r.matchesMarker(tok.Canonical()) {
					idx = i
					break
				}
			}
			if idx < 0 {
				if r.Default != "" {
					roles[name] = r.Default
				}
				continue
			}
			value := idx + 1
			if r.Position == lokaprofile.MarkerAfter {
				value = idx - 1
			}
			if value >= 0 && value < len(tokens) {
				roles[name] = tokens[value].Canonical()
			} else if r.Default != "" {
				roles[name] = r.Default
			}
		}
	}

	return roles
}

// roleValue renders the tokens a role slot consumed. A single token
// uses its canonical form; a multi-token span uses the original source
// slice so spacing is preserved as written.
func roleValue(stream *lokatoken.Stream, toks []lokatoken.Token) string {
	if len(toks) == 1 {
		return toks[0].Canonical()
	}
	first, last := toks[0], toks[len(toks)-1]
	return stream.Source()[first.Start:last.End]
}
