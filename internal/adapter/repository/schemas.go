package repository

import "github.com/Swatkovich/cortexex-sub000/pkg/filterexpr"

var listThemesSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"title": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpSW: "TitlePrefix"},
		},
		"difficulty": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Difficulty",
				filterexpr.OpIN: "Difficulties",
			},
		},
		"language": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Language"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields: map[string]filterexpr.OrderField{
			"created_at": {Expr: "created_at"},
			"updated_at": {Expr: "updated_at"},
			"title":      {Expr: "title"},
			"difficulty": {Expr: "difficulty"},
			"id":         {Expr: "id"},
		},
	},
}

var listQuestionsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"text": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpSW: "TextPrefix"},
		},
		"type": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Type",
				filterexpr.OpIN: "Types",
			},
		},
		"strict": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Strict"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: false,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields: map[string]filterexpr.OrderField{
			"created_at": {Expr: "created_at"},
			"updated_at": {Expr: "updated_at"},
			"text":       {Expr: "text"},
			"id":         {Expr: "id"},
		},
	},
}

var listEntriesSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"word": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpSW: "WordPrefix",
				filterexpr.OpIN: "Words",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "word",
		DefaultPrimaryDesc: false,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields: map[string]filterexpr.OrderField{
			"word":       {Expr: "word"},
			"created_at": {Expr: "created_at"},
			"updated_at": {Expr: "updated_at"},
			"id":         {Expr: "id"},
		},
	},
}

var listSessionsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"created_at": {
			Kind: filterexpr.KindTimestamp,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "CreatedAfter",
				filterexpr.OpLTE: "CreatedBefore",
			},
		},
		"correct_answers": {
			Kind: filterexpr.KindNumber,
			Ops:  map[filterexpr.Op]string{filterexpr.OpGTE: "MinCorrect"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		FallbackDesc:       true,
		Fields: map[string]filterexpr.OrderField{
			"created_at":         {Expr: "created_at"},
			"correct_answers":    {Expr: "correct_answers"},
			"max_correct_in_row": {Expr: "max_correct_in_row"},
			"id":                 {Expr: "id"},
		},
	},
}
