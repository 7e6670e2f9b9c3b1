// File: turkish.go
// Title: Turkish Language Definition
// Description: Profile and pattern set for Turkish: SOV order with
//              case suffixes; the verb comes last so the patient is
//              bound structurally rather than by position. ASCII-only
//              spellings are carried as keyword alternatives.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func turkish() definition {
	prof := &lokaprofile.Profile{
		Code:       "tr",
		Name:       "Turkish",
		NativeName: "Türkçe",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSOV,
		Marking:    lokaprofile.MarkingCaseSuffix,
		UsesSpaces: true,
		References: map[string]string{
			"ben":   "me",
			"o":     "it",
			"sonuç": "result",
			"sonuc": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"location": {Primary: "içinde", Alternatives: []string{"icinde"}, Position: lokaprofile.MarkerAfter},
			"target":   {Primary: "için", Alternatives: []string{"icin"}, Position: lokaprofile.MarkerAfter},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "değiştir", Alternatives: []string{"değistir", "degistir"}, Normalized: "toggle"},
			"add":    {Primary: "ekle", Normalized: "add"},
			"remove": {Primary: "kaldır", Alternatives: []string{"kaldir", "sil"}, Normalized: "remove"},
			"show":   {Primary: "göster", Alternatives: []string{"goster"}, Normalized: "show"},
			"hide":   {Primary: "gizle", Alternatives: []string{"sakla"}, Normalized: "hide"},
			"set":    {Primary: "ayarla", Alternatives: []string{"belirle"}, Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "ilk", Normalized: "first"},
			{Native: "son", Normalized: "last"},
			{Native: "sonraki", Normalized: "next"},
			{Native: "önceki", Normalized: "previous"},
			{Native: "onceki", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "tr-toggle-located",
			Language: "tr",
			Command:  "toggle",
			Priority: 110,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "destination"},
				lokapattern.Literal{Value: "içinde"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "toggle"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"destination": lokapattern.ByMarker{Word: "içinde", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "tr-toggle",
			Language: "tr",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "toggle"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"destination": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "tr-add",
			Language: "tr",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "add"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"destination": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "tr-remove",
			Language: "tr",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "remove"},
			},
		},
		{
			ID:       "tr-show-target",
			Language: "tr",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "show"},
			},
		},
		{
			ID:       "tr-show-self",
			Language: "tr",
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
			ID:       "tr-hide-target",
			Language: "tr",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "hide"},
			},
		},
		{
			ID:       "tr-hide-self",
			Language: "tr",
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
