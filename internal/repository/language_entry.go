package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// ListEntryQuery holds parameters for listing the entries of one language theme.
type ListEntryQuery struct {
	Pagination
	FilterOrder

	ThemeID int64
}

// LanguageEntryRepository abstracts persistence for vocabulary entries.
type LanguageEntryRepository interface {
	Create(ctx context.Context, entry *entity.LanguageEntry) (*entity.LanguageEntry, error)
	Update(ctx context.Context, entry *entity.LanguageEntry) (*entity.LanguageEntry, error)
	GetByID(ctx context.Context, id int64) (*entity.LanguageEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query *ListEntryQuery) ([]entity.LanguageEntry, int64, error)
	ListByThemes(ctx context.Context, themeIDs []int64) ([]entity.LanguageEntry, error)
	// OwnedIDs returns the subset of ids whose theme belongs to userID.
	OwnedIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error)
}
