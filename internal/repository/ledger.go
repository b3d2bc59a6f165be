package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// LedgerRepository is the knowledge ledger. Each upsert must be a single
// atomic statement so concurrent answers for the same pair never lose an update.
type LedgerRepository interface {
	UpsertQuestionMastery(ctx context.Context, userID, questionID int64, correct bool) (entity.KnowledgeLevel, error)
	UpsertEntryStreak(ctx context.Context, userID, entryID int64, correct bool) (entity.CorrectStreak, error)
	// Get methods return nil without error when no row exists yet.
	GetQuestionMastery(ctx context.Context, userID, questionID int64) (*entity.QuestionMastery, error)
	GetEntryMastery(ctx context.Context, userID, entryID int64) (*entity.EntryMastery, error)
}
