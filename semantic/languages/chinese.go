// File: chinese.go
// Title: Chinese Language Definition
// Description: Profile and pattern set for Mandarin Chinese: SVO order
//              without word spacing. The 把 construction fronts the
//              patient, so it gets its own higher-priority pattern.
// Version: v0.1.0
// Created: 2025-11-17

package languages

import (
	lokapattern "github.com/lokascript/semantic-go/semantic/pattern"
	lokaprofile "github.com/lokascript/semantic-go/semantic/profile"
)

func chinese() definition {
	prof := &lokaprofile.Profile{
		Code:       "zh",
		Name:       "Chinese",
		NativeName: "中文",
		Direction:  lokaprofile.DirectionLTR,
		WordOrder:  lokaprofile.OrderSVO,
		Marking:    lokaprofile.MarkingParticle,
		UsesSpaces: false,
		References: map[string]string{
			"我":  "me",
			"它":  "it",
			"结果": "result",
		},
		RoleMarkers: map[string]lokaprofile.RoleMarker{
			"patient":  {Primary: "把", Position: lokaprofile.MarkerBefore},
			"location": {Primary: "在", Position: lokaprofile.MarkerBefore},
		},
		Keywords: map[string]lokaprofile.CommandKeyword{
			"toggle": {Primary: "切换", Normalized: "toggle"},
			"add":    {Primary: "添加", Normalized: "add"},
			"remove": {Primary: "移除", Alternatives: []string{"删除"}, Normalized: "remove"},
			"show":   {Primary: "显示", Normalized: "show"},
			"hide":   {Primary: "隐藏", Normalized: "hide"},
			"set":    {Primary: "设置", Alternatives: []string{"设定"}, Normalized: "set"},
		},
		Extras: []lokaprofile.KeywordEntry{
			{Native: "第一", Normalized: "first"},
			{Native: "最后", Normalized: "last"},
			{Native: "下一个", Normalized: "next"},
			{Native: "上一个", Normalized: "previous"},
		},
	}

	patterns := []*lokapattern.Pattern{
		{
			ID:       "zh-toggle-ba",
			Language: "zh",
			Command:  "toggle",
			Priority: 110,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "把"},
				lokapattern.Role{Name: "patient"},
				lokapattern.Literal{Value: "toggle"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByMarker{Word: "把", Position: lokaprofile.MarkerBefore},
				"destination": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "zh-toggle",
			Language: "zh",
			Command:  "toggle",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "toggle"},
				lokapattern.Role{Name: "patient"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "zh-add",
			Language: "zh",
			Command:  "add",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "add"},
				lokapattern.Role{Name: "patient"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient":     lokapattern.ByPosition{Index: 1},
				"destination": lokapattern.ByDefault{Value: "me"},
			},
		},
		{
			ID:       "zh-remove",
			Language: "zh",
			Command:  "remove",
			Priority: 100,
			Template: []lokapattern.TemplateToken{
				lokapattern.Literal{Value: "remove"},
				lokapattern.Role{Name: "patient"},
			},
			Extraction: map[string]lokapattern.ExtractionRule{
				"patient": lokapattern.ByPosition{Index: 1},
			},
		},
		{
			ID:       "zh-show-target",
			Language: "zh",
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
			ID:       "zh-show-self",
			Language: "zh",
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
			ID:       "zh-hide-target",
			Language: "zh",
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
			ID:       "zh-hide-self",
			Language: "zh",
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
