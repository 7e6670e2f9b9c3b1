// File: korean.go
// Title: Korean Language Definition
// Description: Profile and pattern set for Korean: SOV order with
//              postpositional particles marking roles; unlike Japanese
//              the script is written with word spacing.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func korean() definition {
	prof := &lokaprofile.Profile{
		Code:       "ko",
		Name:       "Korean",
		NativeName: "한국어",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSOV,
		Marking:    lokaprofile.MarkingParticle,
		UsesSpaces: true,
		References: map[string]string{
			"나":  "me",
			"내":  "me",
			"그것": "it",
			"결과": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"patient":     {Primary: "를", Alternatives: []string{"을"}, Position: lokaprofile.MarkerAfter},
			"destination": {Primary: "에서", Alternatives: []string{"에"}, Position: lokaprofile.MarkerAfter},
			"source":      {Primary: "에게서", Position: lokaprofile.MarkerAfter},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "토글", Alternatives: []string{"전환"}, Normalized: "toggle"},
			"add":    {Primary: "추가", Normalized: "add"},
			"remove": {Primary: "제거", Alternatives: []string{"삭제"}, Normalized: "remove"},
			"show":   {Primary: "표시", Normalized: "show"},
			"hide":   {Primary: "숨기다", Normalized: "hide"},
			"set":    {Primary: "설정", Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "첫번째", Normalized: "first"},
			{Native: "마지막", Normalized: "last"},
			{Native: "다음", Normalized: "next"},
			{Native: "이전", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "ko-toggle",
			Language: "ko",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Role{Name: "destination"},
					lokapattern.Literal{Value: "에서"},
				}},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "를"},
				lokapattern.Literal{Value: "toggle"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByMarker{Word: "를", Position: lokaprofile.MarkerAfter},
				"destination": lokapattern.ByMarker{Word: "에서", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "ko-add",
			Language: "ko",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Role{Name: "destination"},
					lokapattern.Literal{Value: "에서"},
				}},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "를"},
				lokapattern.Literal{Value: "add"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByMarker{Word: "를", Position: lokaprofile.MarkerAfter},
				"destination": lokapattern.ByMarker{Word: "에서", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "ko-remove",
			Language: "ko",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Role{Name: "source"},
					lokapattern.Literal{Value: "에게서"},
				}},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "를"},
				lokapattern.Literal{Value: "remove"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByMarker{Word: "를", Position: lokaprofile.MarkerAfter},
				"source":  lokapattern.ByMarker{Word: "에게서", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "ko-show-target",
			Language: "ko",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "를"},
				lokapattern.Literal{Value: "show"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByMarker{Word: "를", Position: lokaprofile.MarkerAfter},
			},
		},
		{
			ID:       "ko-show-self",
			Language: "ko",
			Command:  "show",
			Priority: 90,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "show"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "ko-hide-target",
			Language: "ko",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "를"},
				lokapattern.Literal{Value: "hide"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByMarker{Word: "를", Position: lokaprofile.MarkerAfter},
			},
		},
		{
			ID:       "ko-hide-self",
			Language: "ko",
			Command:  "hide",
			Priority: 90,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "hide"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByDefault{Value: "me"},
			},
		},
	}

	return definition{profile: prof, patterns: patterns}
}
