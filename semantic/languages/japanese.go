// File: japanese.go
// Title: Japanese Language Definition
// Description: Profile and pattern set for Japanese: SOV order with
//              postpositional particles marking roles and no word
//              spacing. Particles are the extraction anchors since
//              optional leading phrases shift token positions.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func japanese() definition {
	prof := &lokaprofile.Profile{
		Code:       "ja",
		Name:       "Japanese",
		NativeName: "日本語",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSOV,
		Marking:    lokaprofile.MarkingParticle,
		UsesSpaces: false,
		References: map[string]string{
			"私":  "me",
			"それ": "it",
			"結果": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"patient":     {Primary: "を", Position: lokaprofile.MarkerAfter},
			"destination": {Primary: "に", Position: lokaprofile.MarkerAfter},
			"location":    {Primary: "で", Position: lokaprofile.MarkerAfter},
			"source":      {Primary: "から", Position: lokaprofile.MarkerAfter},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "切り替え", Alternatives: []string{"トグル"}, Normalized: "toggle"},
			"add":    {Primary: "追加", Normalized: "add"},
			"remove": {Primary: "削除", Normalized: "remove"},
			"show":   {Primary: "表示", Normalized: "show"},
			"hide":   {Primary: "隠す", Alternatives: []string{"非表示"}, Normalized: "hide"},
			"set":    {Primary: "設定", Alternatives: []string{"セット"}, Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "最初", Normalized: "first"},
			{Native: "最後", Normalized: "last"},
			{Native: "次", Normalized: "next"},
			{Native: "前", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "ja-toggle",
			Language: "ja",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Role{Name: "destination"},
					lokapattern.Literal{Value: "で"},
				}},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "を"},
				lokapattern.Literal{Value: "toggle"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByMarker{Word: "を", Position: lokaprofile.MarkerAfter},
				"destination": lokapattern.ByMarker{Word: "で", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "ja-add",
			Language: "ja",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Role{Name: "destination"},
					lokapattern.Literal{Value: "に"},
				}},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "を"},
				lokapattern.Literal{Value: "add"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByMarker{Word: "を", Position: lokaprofile.MarkerAfter},
				"destination": lokapattern.ByMarker{Word: "に", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "ja-remove",
			Language: "ja",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Group{Optional: true, Tokens: []lokapattern.TemplateToken{
					lokapattern.Role{Name: "source"},
					lokapattern.Literal{Value: "から"},
				}},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "を"},
				lokapattern.Literal{Value: "remove"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByMarker{Word: "を", Position: lokaprofile.MarkerAfter},
				"source":  lokapattern.ByMarker{Word: "から", Position: lokaprofile.MarkerAfter, Default: "me"},
			},
		},
		{
			ID:       "ja-show-target",
			Language: "ja",
			Command:  "show",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "を"},
				lokapattern.Literal{Value: "show"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByMarker{Word: "を", Position: lokaprofile.MarkerAfter},
			},
		},
		{
			ID:       "ja-show-self",
			Language: "ja",
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
			ID:       "ja-hide-target",
			Language: "ja",
			Command:  "hide",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "を"},
				lokapattern.Literal{Value: "hide"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByMarker{Word: "を", Position: lokaprofile.MarkerAfter},
			},
		},
		{
			ID:       "ja-hide-self",
			Language: "ja",
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
