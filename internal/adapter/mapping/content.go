package mapping

import (
	"github.com/samber/lo"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

func FromCreateThemeRequest(in *cortexexv1.CreateThemeRequest) *entity.Theme {
	return &entity.Theme{
		Title:           in.Title,
		Description:     in.Description,
		Difficulty:      entity.Difficulty(in.Difficulty),
		IsLanguageTopic: in.IsLanguageTopic,
	}
}

func FromUpdateThemeRequest(in *cortexexv1.UpdateThemeRequest) usecase.ThemeUpdate {
	return usecase.ThemeUpdate{
		ID:              in.ID,
		Title:           in.Title,
		Description:     in.Description,
		Difficulty:      entity.Difficulty(in.Difficulty),
		IsLanguageTopic: in.IsLanguageTopic,
	}
}

func ToTheme(in *entity.Theme) *cortexexv1.Theme {
	return &cortexexv1.Theme{
		ID:              in.ID,
		Title:           in.Title,
		Description:     in.Description,
		Difficulty:      string(in.Difficulty),
		IsLanguageTopic: in.IsLanguageTopic,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.UpdatedAt,
	}
}

func ToThemes(in []entity.Theme) []*cortexexv1.Theme {
	return lo.Map(in, func(t entity.Theme, _ int) *cortexexv1.Theme { return ToTheme(&t) })
}

func FromQuestionRequest(in *cortexexv1.QuestionRequest) *entity.Question {
	return &entity.Question{
		ID:             in.ID,
		ThemeID:        in.ThemeID,
		Text:           in.Text,
		Type:           entity.QuestionType(in.Type),
		IsStrict:       in.IsStrict,
		Options:        in.Options,
		Answer:         in.Answer,
		CorrectOptions: in.CorrectOptions,
	}
}

func ToQuestion(in *entity.Question) *cortexexv1.Question {
	return &cortexexv1.Question{
		ID:             in.ID,
		ThemeID:        in.ThemeID,
		Text:           in.Text,
		Type:           string(in.Type),
		IsStrict:       in.IsStrict,
		Options:        lo.Ternary(in.Options == nil, []string{}, in.Options),
		Answer:         in.Answer,
		CorrectOptions: lo.Ternary(in.CorrectOptions == nil, []string{}, in.CorrectOptions),
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
	}
}

func ToQuestions(in []entity.Question) []*cortexexv1.Question {
	return lo.Map(in, func(q entity.Question, _ int) *cortexexv1.Question { return ToQuestion(&q) })
}

func FromEntryRequest(in *cortexexv1.EntryRequest) *entity.LanguageEntry {
	return &entity.LanguageEntry{
		ID:          in.ID,
		ThemeID:     in.ThemeID,
		Word:        in.Word,
		Description: in.Description,
		Translation: in.Translation,
	}
}

func ToEntry(in *entity.LanguageEntry) *cortexexv1.LanguageEntry {
	return &cortexexv1.LanguageEntry{
		ID:          in.ID,
		ThemeID:     in.ThemeID,
		Word:        in.Word,
		Description: in.Description,
		Translation: in.Translation,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func ToEntries(in []entity.LanguageEntry) []*cortexexv1.LanguageEntry {
	return lo.Map(in, func(e entity.LanguageEntry, _ int) *cortexexv1.LanguageEntry { return ToEntry(&e) })
}
