// File: french.go
// Title: French Language Definition
// Description: Profile and pattern set for French: SVO order with
//              prepositions marking roles.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func french() definition {
	prof := &lokaprofile.Profile{
		Code:       "fr",
		Name:       "French",
		NativeName: "Français",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSVO,
		Marking:    lokaprofile.MarkingPreposition,
		UsesSpaces: true,
		References: map[string]string{
			"moi":      "me",
			"cela":     "it",
			"résultat": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"destination": {Primary: "sur", Alternatives: []string{"à", "dans"}, Position: lokaprofile.MarkerBefore},
			"source":      {Primary: "de", Alternatives: []string{"depuis"}, Position: lokaprofile.MarkerBefore},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "basculer", Normalized: "toggle"},
			"add":    {Primary: "ajouter", Normalized: "add"},
			"remove": {Primary: "supprimer", Alternatives: []string{"retirer"}, Normalized: "remove"},
			"show":   {Primary: "afficher", Alternatives: []string{"montrer"}, Normalized: "show"},
			"hide":   {Primary: "cacher", Alternatives: []string{"masquer"}, Normalized: "hide"},
			"set":    {Primary: "définir", Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "premier", Normalized: "first"},
			{Native: "dernier", Normalized: "last"},
			{Native: "suivant", Normalized: "next"},
			{Native: "précédent", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "fr-toggle",
			Language: "fr",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "toggle"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "sur"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "sur", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "fr-add",
			Language: "fr",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "add"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "sur"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "sur", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "fr-remove",
			Language: "fr",
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
			ID:       "fr-show-target",
			Language: "fr",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "show"},
				lokapattern.Role{Name: "patient"},
			},
		},
		{
			ID:       "fr-show-self",
			Language: "fr",
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
			ID:       "fr-hide-target",
			Language: "fr",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "hide"},
				lokapattern.Role{Name: "patient"},
			},
		},
		{
			ID:       "fr-hide-self",
			Language: "fr",
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
