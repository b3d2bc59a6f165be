package mapping

import (
	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

func ToKnowledgeDistribution(in entity.KnowledgeDistribution) *cortexexv1.KnowledgeDistribution {
	return &cortexexv1.KnowledgeDistribution{
		DontKnow:      in.DontKnow,
		Know:          in.Know,
		WellKnow:      in.WellKnow,
		PerfectlyKnow: in.PerfectlyKnow,
	}
}

func toQuestionsCounts(in entity.QuestionsCounts) *cortexexv1.QuestionsCounts {
	return &cortexexv1.QuestionsCounts{Strict: in.Strict, NonStrict: in.NonStrict}
}

func ToGlobalStats(in *entity.GlobalStats) *cortexexv1.GlobalStats {
	return &cortexexv1.GlobalStats{
		TotalUsers:             in.TotalUsers,
		TotalThemes:            in.TotalThemes,
		TotalQuestions:         in.TotalQuestions,
		TotalGamesPlayed:       in.TotalGamesPlayed,
		TotalQuestionsAnswered: in.TotalQuestionsAnswered,
		KnowledgeDistribution:  ToKnowledgeDistribution(in.KnowledgeDistribution),
	}
}

func ToProfileStats(in *entity.ProfileStats) *cortexexv1.ProfileStats {
	return &cortexexv1.ProfileStats{
		TotalGames:             in.TotalGames,
		TotalQuestionsAnswered: in.TotalQuestionsAnswered,
		BestCorrectInRow:       in.BestCorrectInRow,
		CurrentCorrectInRow:    in.CurrentCorrectInRow,
		QuestionsCounts:        toQuestionsCounts(in.QuestionsCounts),
		KnowledgeDistribution:  ToKnowledgeDistribution(in.KnowledgeDistribution),
	}
}

func ToThemeStats(in *entity.ThemeStats) *cortexexv1.ThemeStats {
	return &cortexexv1.ThemeStats{
		ThemeID:               in.ThemeID,
		IsLanguageTopic:       in.IsLanguageTopic,
		QuestionsCounts:       toQuestionsCounts(in.QuestionsCounts),
		KnowledgeDistribution: ToKnowledgeDistribution(in.KnowledgeDistribution),
	}
}
