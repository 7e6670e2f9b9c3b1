// File: profile.go
// Title: Language Profile Definitions
// Description: Defines the declarative description of a language's typology
//              (word order, marking strategy, writing direction, spacing)
//              and its keyword vocabulary. Profiles are pure data; the
//              tokenizer and pattern data derive everything from them.
// Version: v0.1.0
// Created: 2025-11-15

package profile

import (
	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokastringx "github.com/lokascript/semantic-go/utils/stringx"
)

// Direction represents the writing direction of a language
type Direction string

const (
	// DirectionLTR is left-to-right writing
	DirectionLTR Direction = "ltr"

	// DirectionRTL is right-to-left writing
	DirectionRTL Direction = "rtl"
)

// WordOrder represents the canonical clause ordering of a language
type WordOrder string

const (
	// OrderSVO is subject-verb-object ordering (English, Spanish, Chinese)
	OrderSVO WordOrder = "SVO"

	// OrderSOV is subject-object-verb ordering (Japanese, Korean, Turkish)
	OrderSOV WordOrder = "SOV"

	// OrderVSO is verb-subject-object ordering (Arabic)
	OrderVSO WordOrder = "VSO"
)

// Marking represents how a language signals a role's grammatical function
type Marking string

const (
	// MarkingPreposition marks roles with words before the phrase ("on #panel")
	MarkingPreposition Marking = "preposition"

	// MarkingPostposition marks roles with words after the phrase
	MarkingPostposition Marking = "postposition"

	// MarkingParticle marks roles with particles attached after the phrase
	// (Japanese を/に, Korean 를/에서)
	MarkingParticle Marking = "particle"

	// MarkingCaseSuffix marks roles with case suffixes (Turkish -i/-de)
	MarkingCaseSuffix Marking = "case-suffix"
)

// MarkerPosition states whether a role marker precedes or follows the
// phrase it marks
type MarkerPosition string

const (
	// MarkerBefore means the marker precedes the marked phrase
	MarkerBefore MarkerPosition = "before"

	// MarkerAfter means the marker follows the marked phrase
	MarkerAfter MarkerPosition = "after"
)

// RoleMarker describes the surface word(s) marking one semantic role
type RoleMarker struct {
	// Primary is the canonical native marker word
	Primary string `toml:"primary" yaml:"primary"`

	// Alternatives are equivalent native marker words
	Alternatives []string `toml:"alternatives,omitempty" yaml:"alternatives,omitempty"`

	// Position states whether the marker precedes or follows the phrase
	Position MarkerPosition `toml:"position" yaml:"position"`
}

// CommandKeyword maps a command's native surface forms to its canonical name
type CommandKeyword struct {
	// Primary is the canonical native surface form
	Primary string `toml:"primary" yaml:"primary"`

	// Alternatives are equivalent native surface forms (synonyms)
	Alternatives []string `toml:"alternatives,omitempty" yaml:"alternatives,omitempty"`

	// Normalized is the cross-language command identifier (e.g. "toggle")
	Normalized string `toml:"normalized" yaml:"normalized"`
}

// KeywordEntry is a single surface-form-to-canonical-form mapping used to
// build the tokenizer's keyword dictionary
type KeywordEntry struct {
	// Native is the surface string in the language
	Native string `toml:"native" yaml:"native"`

	// Normalized is the canonical cross-language form
	Normalized string `toml:"normalized" yaml:"normalized"`
}

// Profile declaratively describes one language: its typology and its
// keyword vocabulary. Profiles are created once at startup and never
// mutated afterwards.
type Profile struct {
	// Code is the BCP-47-ish language code ("en", "ja", "ko", ...)
	Code string `toml:"code" yaml:"code"`

	// Name is the English name of the language
	Name string `toml:"name" yaml:"name"`

	// NativeName is the language's name for itself
	NativeName string `toml:"native_name" yaml:"native_name"`

	// Direction is the writing direction
	Direction Direction `toml:"direction" yaml:"direction"`

	// WordOrder is the canonical clause ordering
	WordOrder WordOrder `toml:"word_order" yaml:"word_order"`

	// Marking is the role marking strategy
	Marking Marking `toml:"marking" yaml:"marking"`

	// UsesSpaces states whether words are separated by whitespace
	UsesSpaces bool `toml:"uses_spaces" yaml:"uses_spaces"`

	// References maps canonical reference names to native words
	// (e.g. "me" -> "私" for Japanese)
	References map[string]string `toml:"references,omitempty" yaml:"references,omitempty"`

	// RoleMarkers maps semantic role names to their native markers
	RoleMarkers map[string]RoleMarker `toml:"role_markers,omitempty" yaml:"role_markers,omitempty"`

	// Keywords maps canonical command names to their native keywords
	Keywords map[string]CommandKeyword `toml:"keywords" yaml:"keywords"`

	// Extras are additional keyword entries: boolean/null literals,
	// positional words, DOM event names
	Extras []KeywordEntry `toml:"extras,omitempty" yaml:"extras,omitempty"`
}

// Validate checks the structural integrity of a profile
func (p *Profile) Validate() error {
	if lokastringx.IsBlank(p.Code) {
		return lokaerror.New("profile code cannot be blank").
			WithCode(lokaerror.CodeInvalidProfile).
			WithOperation("profile.Validate")
	}

	switch p.Direction {
	case DirectionLTR, DirectionRTL:
	default:
		return lokaerror.Newf("profile %s: invalid direction %q", p.Code, p.Direction).
			WithCode(lokaerror.CodeInvalidProfile).
			WithOperation("profile.Validate")
	}

	switch p.WordOrder {
	case OrderSVO, OrderSOV, OrderVSO:
	default:
		return lokaerror.Newf("profile %s: invalid word order %q", p.Code, p.WordOrder).
			WithCode(lokaerror.CodeInvalidProfile).
			WithOperation("profile.Validate")
	}

	switch p.Marking {
	case MarkingPreposition, MarkingPostposition, MarkingParticle, MarkingCaseSuffix:
	default:
		return lokaerror.Newf("profile %s: invalid marking strategy %q", p.Code, p.Marking).
			WithCode(lokaerror.CodeInvalidProfile).
			WithOperation("profile.Validate")
	}

	for command, kw := range p.Keywords {
		if lokastringx.IsBlank(kw.Primary) {
			return lokaerror.Newf("profile %s: command %q has no primary keyword", p.Code, command).
				WithCode(lokaerror.CodeInvalidProfile).
				WithOperation("profile.Validate")
		}
		if lokastringx.IsBlank(kw.Normalized) {
			return lokaerror.Newf("profile %s: command %q has no normalized form", p.Code, command).
				WithCode(lokaerror.CodeInvalidProfile).
				WithOperation("profile.Validate")
		}
	}

	for role, marker := range p.RoleMarkers {
		if lokastringx.IsBlank(marker.Primary) {
			return lokaerror.Newf("profile %s: role %q has no primary marker", p.Code, role).
				WithCode(lokaerror.CodeInvalidProfile).
				WithOperation("profile.Validate")
		}
		switch marker.Position {
		case MarkerBefore, MarkerAfter:
		default:
			return lokaerror.Newf("profile %s: role %q has invalid marker position %q", p.Code, role, marker.Position).
				WithCode(lokaerror.CodeInvalidProfile).
				WithOperation("profile.Validate")
		}
	}

	for _, entry := range p.Extras {
		if lokastringx.IsBlank(entry.Native) || lokastringx.IsBlank(entry.Normalized) {
			return lokaerror.Newf("profile %s: extra keyword entry with blank native or normalized form", p.Code).
				WithCode(lokaerror.CodeInvalidProfile).
				WithOperation("profile.Validate")
		}
	}

	return nil
}

// Reference returns the native word for a canonical reference name,
// falling back to the canonical name itself when the profile has no entry
func (p *Profile) Reference(name string) string {
	if native, ok := p.References[name]; ok {
		return native
	}
	return name
}

// Marker returns the role marker for a semantic role name
func (p *Profile) Marker(role string) (RoleMarker, bool) {
	marker, ok := p.RoleMarkers[role]
	return marker, ok
}

// CommandKeywordFor returns the keyword entry for a canonical command name
func (p *Profile) CommandKeywordFor(command string) (CommandKeyword, bool) {
	kw, ok := p.Keywords[command]
	return kw, ok
}
