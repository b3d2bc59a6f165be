package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

// SessionUsecase records finished play sessions and serves their history.
type SessionUsecase interface {
	// RecordSessionResult appends the session summary and then applies every
	// graded outcome to the knowledge ledger. Ledger failures are logged per
	// item and never fail the call once the summary is stored.
	RecordSessionResult(ctx context.Context, userID int64, result *entity.SessionResult) (*entity.SessionSummary, error)
	ListSessions(ctx context.Context, query *repository.ListSessionQuery) ([]entity.SessionSummary, int64, error)
}

// NewSessionUsecase wires the recorder with its collaborators.
func NewSessionUsecase(
	sessions repository.SessionRepository,
	ledger repository.LedgerRepository,
	questions repository.QuestionRepository,
	entries repository.LanguageEntryRepository,
	logger logrus.FieldLogger,
) SessionUsecase {
	return &sessionUsecase{
		sessions:  sessions,
		ledger:    ledger,
		questions: questions,
		entries:   entries,
		logger:    logger,
		clock:     time.Now,
	}
}

type sessionUsecase struct {
	sessions  repository.SessionRepository
	ledger    repository.LedgerRepository
	questions repository.QuestionRepository
	entries   repository.LanguageEntryRepository
	logger    logrus.FieldLogger
	clock     func() time.Time
}

func (u *sessionUsecase) RecordSessionResult(ctx context.Context, userID int64, result *entity.SessionResult) (*entity.SessionSummary, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	summary, err := u.sessions.Create(ctx, entity.NewSessionSummary(userID, result, u.clock()))
	if err != nil {
		return nil, err
	}

	log := u.logger.WithField("user_id", userID)
	u.applyQuestionOutcomes(ctx, log, userID, result.PerQuestion)
	u.applyEntryOutcomes(ctx, log, userID, result.LanguageEntryResults)
	return summary, nil
}

func (u *sessionUsecase) applyQuestionOutcomes(ctx context.Context, log logrus.FieldLogger, userID int64, outcomes []entity.QuestionOutcome) {
	outcomes = lo.Filter(outcomes, func(o entity.QuestionOutcome, _ int) bool { return o.QuestionID != nil })
	if len(outcomes) == 0 {
		return
	}

	ids := lo.Uniq(lo.Map(outcomes, func(o entity.QuestionOutcome, _ int) int64 { return *o.QuestionID }))
	strict, err := u.questions.StrictIDs(ctx, ids)
	if err != nil {
		log.WithError(err).Warn("skip question outcomes: strict lookup failed")
		return
	}
	graded := lo.Associate(strict, func(id int64) (int64, struct{}) { return id, struct{}{} })

	for _, o := range outcomes {
		id := *o.QuestionID
		if _, ok := graded[id]; !ok {
			log.WithField("question_id", id).Debug("skip outcome for unknown or non-strict question")
			continue
		}
		level, err := u.ledger.UpsertQuestionMastery(ctx, userID, id, o.IsCorrect)
		if err != nil {
			log.WithField("question_id", id).WithError(err).Warn("update question mastery")
			continue
		}
		log.WithFields(logrus.Fields{"question_id": id, "level": int(level)}).Debug("question mastery updated")
	}
}

func (u *sessionUsecase) applyEntryOutcomes(ctx context.Context, log logrus.FieldLogger, userID int64, outcomes []entity.EntryOutcome) {
	if len(outcomes) == 0 {
		return
	}

	ids := lo.Uniq(lo.Map(outcomes, func(o entity.EntryOutcome, _ int) int64 { return o.EntryID }))
	owned, err := u.entries.OwnedIDs(ctx, userID, ids)
	if err != nil {
		log.WithError(err).Warn("skip entry outcomes: ownership lookup failed")
		return
	}
	allowed := lo.Associate(owned, func(id int64) (int64, struct{}) { return id, struct{}{} })

	for _, o := range outcomes {
		if _, ok := allowed[o.EntryID]; !ok {
			log.WithField("entry_id", o.EntryID).Debug("skip outcome for entry outside the user's themes")
			continue
		}
		streak, err := u.ledger.UpsertEntryStreak(ctx, userID, o.EntryID, o.IsCorrect)
		if err != nil {
			log.WithField("entry_id", o.EntryID).WithError(err).Warn("update entry streak")
			continue
		}
		log.WithFields(logrus.Fields{"entry_id": o.EntryID, "streak": int(streak)}).Debug("entry streak updated")
	}
}

func (u *sessionUsecase) ListSessions(ctx context.Context, query *repository.ListSessionQuery) ([]entity.SessionSummary, int64, error) {
	if query == nil || query.UserID <= 0 {
		return nil, 0, entity.ErrInvalidUserID
	}
	return u.sessions.List(ctx, query)
}
