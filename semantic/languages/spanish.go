// File: spanish.go
// Title: Spanish Language Definition
// Description: Profile and pattern set for Spanish: SVO order with
//              prepositions marking roles.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func spanish() definition {
	prof := &lokaprofile.Profile{
		Code:       "es",
		Name:       "Spanish",
		NativeName: "Español",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSVO,
		Marking:    lokaprofile.MarkingPreposition,
		UsesSpaces: true,
		References: map[string]string{
			"yo":        "me",
			"mi":        "me",
			"ello":      "it",
			"resultado": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"destination": {Primary: "en", Alternatives: []string{"a"}, Position: lokaprofile.MarkerBefore},
			"source":      {Primary: "de", Alternatives: []string{"desde"}, Position: lokaprofile.MarkerBefore},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "alternar", Normalized: "toggle"},
			"add":    {Primary: "añadir", Alternatives: []string{"agregar"}, Normalized: "add"},
			"remove": {Primary: "quitar", Alternatives: []string{"eliminar"}, Normalized: "remove"},
			"show":   {Primary: "mostrar", Normalized: "show"},
			"hide":   {Primary: "ocultar", Alternatives: []string{"esconder"}, Normalized: "hide"},
			"set":    {Primary: "establecer", Alternatives: []string{"fijar"}, Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "primero", Normalized: "first"},
			{Native: "último", Normalized: "last"},
			{Native: "siguiente", Normalized: "next"},
			{Native: "anterior", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "es-toggle",
			Language: "es",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "toggle"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "en"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "en", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "es-add",
			Language: "es",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "add"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "en"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "en", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "es-remove",
			Language: "es",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "remove"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "de"},
					lokapattern.Role{Name: "source"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
				"source":  lokapattern.ByMarker{Word: "de", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "es-show-target",
			Language: "es",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "show"},
				lokapattern.Role{Name: "patient"},
			},
		},
		{
			ID:       "es-show-self",
			Language: "es",
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
			ID:       "es-hide-target",
			Language: "es",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "hide"},
				lokapattern.Role{Name: "patient"},
			},
		},
		{
			ID:       "es-hide-self",
			Language: "es",
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
