package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// ListQuestionQuery holds parameters for listing the questions of one theme.
type ListQuestionQuery struct {
	Pagination
	FilterOrder

	ThemeID int64
}

// QuestionRepository abstracts persistence for classic questions.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) (*entity.Question, error)
	Update(ctx context.Context, question *entity.Question) (*entity.Question, error)
	GetByID(ctx context.Context, id int64) (*entity.Question, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query *ListQuestionQuery) ([]entity.Question, int64, error)
	ListByThemes(ctx context.Context, themeIDs []int64) ([]entity.Question, error)
	// StrictIDs returns the subset of ids naming existing strict questions.
	StrictIDs(ctx context.Context, ids []int64) ([]int64, error)
}
