// File: german.go
// Title: German Language Definition
// Description: Profile and pattern set for German: SVO order with
//              prepositions marking roles.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func german() definition {
	prof := &lokaprofile.Profile{
		Code:       "de",
		Name:       "German",
		NativeName: "Deutsch",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSVO,
		Marking:    lokaprofile.MarkingPreposition,
		UsesSpaces: true,
		References: map[string]string{
			"ich":      "me",
			"mir":      "me",
			"es":       "it",
			"ergebnis": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"destination": {Primary: "auf", Alternatives: []string{"zu", "in"}, Position: lokaprofile.MarkerBefore},
			"source":      {Primary: "von", Alternatives: []string{"aus"}, Position: lokaprofile.MarkerBefore},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "umschalten", Normalized: "toggle"},
			"add":    {Primary: "hinzufügen", Normalized: "add"},
			"remove": {Primary: "entfernen", Alternatives: []string{"löschen"}, Normalized: "remove"},
			"show":   {Primary: "anzeigen", Alternatives: []string{"zeigen"}, Normalized: "show"},
			"hide":   {Primary: "verbergen", Alternatives: []string{"verstecken"}, Normalized: "hide"},
			"set":    {Primary: "setzen", Alternatives: []string{"festlegen"}, Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "erste", Normalized: "first"},
			{Native: "letzte", Normalized: "last"},
			{Native: "nächste", Normalized: "next"},
			{Native: "vorherige", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "de-toggle",
			Language: "de",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "toggle"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "auf"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "auf", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "de-add",
			Language: "de",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "add"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "auf"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "auf", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "de-remove",
			Language: "de",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "remove"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "von"},
					lokapattern.Role{Name: "source"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
				"source":  lokapattern.ByMarker{Word: "von", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "de-show-target",
			Language: "de",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "show"},
				lokapattern.Role{Name: "patient"},
			},
		},
		{
			ID:       "de-show-self",
			Language: "de",
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
			ID:       "de-hide-target",
			Language: "de",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "hide"},
				lokapattern.Role{Name: "patient"},
			},
		},
		{
			ID:       "de-hide-self",
			Language: "de",
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
