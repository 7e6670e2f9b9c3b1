// File: arabic.go
// Title: Arabic Language Definition
// Description: Profile and pattern set for Arabic: VSO order with
//              prepositions marking roles, written right to left.
//              Keyword alternatives cover undiacritized spellings.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func arabic() definition {
	prof := &lokaprofile.Profile{
		Code:       "ar",
		Name:       "Arabic",
		NativeName: "العربية",
		Direction:  lokaprofile.DirectionRTL,
		WordOrder:  lokaprofile.OrderVSO,
		Marking:    lokaprofile.MarkingPreposition,
		UsesSpaces: true,
		References: map[string]string{
			"أنا":     "me",
			"هو":      "it",
			"النتيجة": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"destination": {Primary: "على", Position: lokaprofile.MarkerBefore},
			"target":      {Primary: "إلى", Alternatives: []string{"الى"}, Position: lokaprofile.MarkerBefore},
			"source":      {Primary: "من", Position: lokaprofile.MarkerBefore},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "بدّل", Alternatives: []string{"بدل"}, Normalized: "toggle"},
			"add":    {Primary: "أضف", Alternatives: []string{"اضف"}, Normalized: "add"},
			"remove": {Primary: "أزل", Alternatives: []string{"ازل", "احذف"}, Normalized: "remove"},
			"show":   {Primary: "أظهر", Alternatives: []string{"اظهر"}, Normalized: "show"},
			"hide":   {Primary: "أخفِ", Alternatives: []string{"اخف"}, Normalized: "hide"},
			"set":    {Primary: "ضع", Normalized: "set"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "ar-toggle",
			Language: "ar",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "toggle"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "على"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "على", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "ar-add",
			Language: "ar",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "add"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "إلى"},
					lokapattern.Role{Name: "destination"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByMarker{Word: "إلى", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "ar-remove",
			Language: "ar",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "remove"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Literal{Value: "من"},
					lokapattern.Role{Name: "source"},
				}},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
				"source":  lokapattern.ByMarker{Word: "من", Position: lokaprofile.MarkerBefore, Default: "me"},
			},
		},
		{
			ID:       "ar-show-target",
			Language: "ar",
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
			ID:       "ar-show-self",
			Language: "ar",
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
			ID:       "ar-hide-target",
			Language: "ar",
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
			ID:       "ar-hide-self",
			Language: "ar",
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
