// File: english.go
// Title: English Language Definition
// Description: Profile and pattern set for English: SVO order with
//              prepositions marking roles. English carries the full
//              command vocabulary; other languages cover the core
//              element commands in their own grammar.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func english() definition {
	prof := &lokaprofile.Profile{
		Code:       "en",
		Name:       "English",
		NativeName: "English",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSVO,
		Marking:    lokaprofile.MarkingPreposition,
		UsesSpaces: true,
		References: map[string]string{
			"me":     "me",
			"my":     "me",
			"it":     "it",
			"its":    "it",
			"result": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"destination": {Primary: "on", Alternatives: []string{"onto", "into"}, Position: lokaprofile.MarkerBefore},
			"target":      {Primary: "to", Position: lokaprofile.MarkerBefore},
			"source":      {Primary: "from", Position: lokaprofile.MarkerBefore},
			"amount":      {Primary: "by", Position: lokaprofile.MarkerBefore},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle":    {Primary: "toggle", Normalized: "toggle"},
			"add":       {Primary: "add", Normalized: "add"},
			"remove":    {Primary: "remove", Normalized: "remove"},
			"show":      {Primary: "show", Normalized: "show"},
			"hide":      {Primary: "hide", Normalized: "hide"},
			"set":       {Primary: "set", Normalized: "set"},
			"increment": {Primary: "increment", Normalized: "increment"},
			"decrement": {Primary: "decrement", Normalized: "decrement"},
			"log":       {Primary: "log", Normalized: "log"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "first", Normalized: "first"},
			{Native: "last", Normalized: "last"},
			{Native: "next", Normalized: "next"},
			{Native: "previous", Normalized: "previous"},
			{Native: "closest", Normalized: "closest"},
			{Native: "parent", Normalized: "parent"},
			{Native: "true", Normalized: "true"},
			{Native: "false", Normalized: "false"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "en-toggle",
			Language: "en",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "toggle"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "on"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "on", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "en-add",
			Language: "en",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "add"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "to"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "to", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "en-remove",
			Language: "en",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "remove"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "from"},
					lokapattern.Role{Name: "source"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
				"source":  lokapattern.ByMarker{Word: "from", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "en-show-target",
			Language: "en",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "show"},
				lokapattern.Role{Name: "patient"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
			},
		},
		{
			ID:       "en-show-self",
			Language: "en",
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
			ID:       "en-hide-target",
			Language: "en",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "hide"},
				lokapattern.Role{Name: "patient"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
			},
		},
		{
			ID:       "en-hide-self",
			Language: "en",
			Command:  "hide",
			Priority: 90,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "hide"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "en-set",
			Language: "en",
			Command:  "set",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "set"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "to"},
				lokapattern.Role{Name: "value"},
			},
		},
		{
			ID:       "en-increment",
			Language: "en",
			Command:  "increment",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "increment"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "by"},
					lokapattern.Role{Name: "amount"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
				"amount":  lokapattern.ByMarker{Word: "by", Position: lokaprofile.MarkerBefore, Default: "1"},
			},
		},
		{
			ID:       "en-decrement",
			Language: "en",
			Command:  "decrement",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "decrement"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "by"},
					lokapattern.Role{Name: "amount"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
				"amount":  lokapattern.ByMarker{Word: "by", Position: lokaprofile.MarkerBefore, Default: "1"},
			},
		},
		{
			ID:       "en-log",
			Language: "en",
			Command:  "log",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "log"},
				lokapattern.Role{Name: "message"},
			},
		},
	}

	return definition{profile: prof, patterns: patterns}
}
