package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

// ThemeUpdate carries the editable theme attributes. IsLanguageTopic is only
// compared against the stored flag, which never changes.
type ThemeUpdate struct {
	ID              int64
	Title           string
	Description     string
	Difficulty      entity.Difficulty
	IsLanguageTopic *bool
}

// ThemeUsecase manages a user's themes and their content. Every operation
// checks that the acting user owns the theme.
type ThemeUsecase interface {
	CreateTheme(ctx context.Context, userID int64, theme *entity.Theme) (*entity.Theme, error)
	UpdateTheme(ctx context.Context, userID int64, update ThemeUpdate) (*entity.Theme, error)
	GetTheme(ctx context.Context, userID, id int64) (*entity.Theme, error)
	ListThemes(ctx context.Context, query *repository.ListThemeQuery) ([]entity.Theme, int64, error)
	DeleteTheme(ctx context.Context, userID, id int64) error

	CreateQuestion(ctx context.Context, userID int64, question *entity.Question) (*entity.Question, error)
	UpdateQuestion(ctx context.Context, userID int64, question *entity.Question) (*entity.Question, error)
	DeleteQuestion(ctx context.Context, userID, id int64) error
	ListQuestions(ctx context.Context, userID int64, query *repository.ListQuestionQuery) ([]entity.Question, int64, error)

	CreateEntry(ctx context.Context, userID int64, entry *entity.LanguageEntry) (*entity.LanguageEntry, error)
	UpdateEntry(ctx context.Context, userID int64, entry *entity.LanguageEntry) (*entity.LanguageEntry, error)
	DeleteEntry(ctx context.Context, userID, id int64) error
	ListEntries(ctx context.Context, userID int64, query *repository.ListEntryQuery) ([]entity.LanguageEntry, int64, error)
}

// NewThemeUsecase wires the content repositories.
func NewThemeUsecase(
	themes repository.ThemeRepository,
	questions repository.QuestionRepository,
	entries repository.LanguageEntryRepository,
	logger logrus.FieldLogger,
) ThemeUsecase {
	return &themeUsecase{
		themes:    themes,
		questions: questions,
		entries:   entries,
		logger:    logger,
		clock:     time.Now,
	}
}

type themeUsecase struct {
	themes    repository.ThemeRepository
	questions repository.QuestionRepository
	entries   repository.LanguageEntryRepository
	logger    logrus.FieldLogger
	clock     func() time.Time
}

func (u *themeUsecase) CreateTheme(ctx context.Context, userID int64, theme *entity.Theme) (*entity.Theme, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	if theme == nil {
		return nil, entity.ErrInvalidThemeTitle
	}
	copy := *theme
	copy.ID = 0
	copy.UserID = userID
	copy.CreatedAt = time.Time{}
	copy.Normalize(u.clock())
	if err := copy.Validate(); err != nil {
		return nil, err
	}
	copy.Difficulty, _ = entity.ParseDifficulty(string(copy.Difficulty))
	return u.themes.Create(ctx, &copy)
}

func (u *themeUsecase) UpdateTheme(ctx context.Context, userID int64, update ThemeUpdate) (*entity.Theme, error) {
	existing, err := u.ownedTheme(ctx, userID, update.ID)
	if err != nil {
		return nil, err
	}
	if update.IsLanguageTopic != nil && *update.IsLanguageTopic != existing.IsLanguageTopic {
		return nil, entity.ErrLanguageFlagLocked
	}

	existing.Title = update.Title
	existing.Description = update.Description
	existing.Difficulty = update.Difficulty
	existing.Normalize(u.clock())
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	existing.Difficulty, _ = entity.ParseDifficulty(string(existing.Difficulty))
	return u.themes.Update(ctx, existing)
}

func (u *themeUsecase) GetTheme(ctx context.Context, userID, id int64) (*entity.Theme, error) {
	return u.ownedTheme(ctx, userID, id)
}

func (u *themeUsecase) ListThemes(ctx context.Context, query *repository.ListThemeQuery) ([]entity.Theme, int64, error) {
	if query == nil || query.UserID <= 0 {
		return nil, 0, entity.ErrInvalidUserID
	}
	return u.themes.List(ctx, query)
}

func (u *themeUsecase) DeleteTheme(ctx context.Context, userID, id int64) error {
	if _, err := u.ownedTheme(ctx, userID, id); err != nil {
		return err
	}
	if err := u.themes.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.WithFields(logrus.Fields{"user_id": userID, "theme_id": id}).Info("theme deleted")
	return nil
}

func (u *themeUsecase) CreateQuestion(ctx context.Context, userID int64, question *entity.Question) (*entity.Question, error) {
	if question == nil {
		return nil, entity.ErrInvalidQuestionText
	}
	theme, err := u.ownedTheme(ctx, userID, question.ThemeID)
	if err != nil {
		return nil, err
	}
	if err := theme.AcceptsQuestions(); err != nil {
		return nil, err
	}

	copy := *question
	copy.ID = 0
	copy.CreatedAt = time.Time{}
	copy.Normalize(u.clock())
	if err := copy.Validate(); err != nil {
		return nil, err
	}
	return u.questions.Create(ctx, &copy)
}

func (u *themeUsecase) UpdateQuestion(ctx context.Context, userID int64, question *entity.Question) (*entity.Question, error) {
	if question == nil {
		return nil, entity.ErrInvalidQuestionText
	}
	existing, err := u.questions.GetByID(ctx, question.ID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownedTheme(ctx, userID, existing.ThemeID); err != nil {
		return nil, err
	}

	copy := *question
	copy.ThemeID = existing.ThemeID
	copy.CreatedAt = existing.CreatedAt
	copy.Normalize(u.clock())
	if err := copy.Validate(); err != nil {
		return nil, err
	}
	return u.questions.Update(ctx, &copy)
}

func (u *themeUsecase) DeleteQuestion(ctx context.Context, userID, id int64) error {
	existing, err := u.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := u.ownedTheme(ctx, userID, existing.ThemeID); err != nil {
		return err
	}
	return u.questions.Delete(ctx, id)
}

func (u *themeUsecase) ListQuestions(ctx context.Context, userID int64, query *repository.ListQuestionQuery) ([]entity.Question, int64, error) {
	if query == nil {
		return nil, 0, entity.ErrThemeNotFound
	}
	theme, err := u.ownedTheme(ctx, userID, query.ThemeID)
	if err != nil {
		return nil, 0, err
	}
	if err := theme.AcceptsQuestions(); err != nil {
		return nil, 0, err
	}
	return u.questions.List(ctx, query)
}

func (u *themeUsecase) CreateEntry(ctx context.Context, userID int64, entry *entity.LanguageEntry) (*entity.LanguageEntry, error) {
	if entry == nil {
		return nil, entity.ErrInvalidEntryWord
	}
	theme, err := u.ownedTheme(ctx, userID, entry.ThemeID)
	if err != nil {
		return nil, err
	}
	if err := theme.AcceptsEntries(); err != nil {
		return nil, err
	}

	copy := *entry
	copy.ID = 0
	copy.CreatedAt = time.Time{}
	copy.Normalize(u.clock())
	if err := copy.Validate(); err != nil {
		return nil, err
	}
	return u.entries.Create(ctx, &copy)
}

func (u *themeUsecase) UpdateEntry(ctx context.Context, userID int64, entry *entity.LanguageEntry) (*entity.LanguageEntry, error) {
	if entry == nil {
		return nil, entity.ErrInvalidEntryWord
	}
	existing, err := u.entries.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownedTheme(ctx, userID, existing.ThemeID); err != nil {
		return nil, err
	}

	copy := *entry
	copy.ThemeID = existing.ThemeID
	copy.CreatedAt = existing.CreatedAt
	copy.Normalize(u.clock())
	if err := copy.Validate(); err != nil {
		return nil, err
	}
	return u.entries.Update(ctx, &copy)
}

func (u *themeUsecase) DeleteEntry(ctx context.Context, userID, id int64) error {
	existing, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := u.ownedTheme(ctx, userID, existing.ThemeID); err != nil {
		return err
	}
	return u.entries.Delete(ctx, id)
}

func (u *themeUsecase) ListEntries(ctx context.Context, userID int64, query *repository.ListEntryQuery) ([]entity.LanguageEntry, int64, error) {
	if query == nil {
		return nil, 0, entity.ErrThemeNotFound
	}
	theme, err := u.ownedTheme(ctx, userID, query.ThemeID)
	if err != nil {
		return nil, 0, err
	}
	if err := theme.AcceptsEntries(); err != nil {
		return nil, 0, err
	}
	return u.entries.List(ctx, query)
}

// ownedTheme loads the theme and rejects foreign ones with ErrForbidden.
func (u *themeUsecase) ownedTheme(ctx context.Context, userID, id int64) (*entity.Theme, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	theme, err := u.themes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := theme.CheckOwner(userID); err != nil {
		return nil, err
	}
	return theme, nil
}
