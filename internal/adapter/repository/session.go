package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/database"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
	"github.com/Swatkovich/cortexex-sub000/pkg/filterexpr"
)

var sessionColumns = []string{"id", "user_id", "questions_answered", "correct_answers", "max_correct_in_row", "created_at"}

type sessionRepository struct {
	store
}

// NewSessionRepository constructs the append-only session summary store.
func NewSessionRepository(drv dialect.Driver) repository.SessionRepository {
	return &sessionRepository{store{drv: drv}}
}

type listSessionsParams struct {
	filterexpr.Ordering

	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	MinCorrect    *int64
}

func (r *sessionRepository) Create(ctx context.Context, summary *entity.SessionSummary) (*entity.SessionSummary, error) {
	insert := r.builder().Insert(database.TableSessions).
		Columns("user_id", "questions_answered", "correct_answers", "max_correct_in_row", "created_at").
		Values(summary.UserID, summary.QuestionsAnswered, summary.CorrectAnswers, summary.MaxCorrectInRow,
			summary.CreatedAt.UTC()).
		Returning("id")

	created := *summary
	if _, err := r.queryOne(ctx, insert, func(rows *sql.Rows) error {
		return rows.Scan(&created.ID)
	}); err != nil {
		if errors.Is(err, errForeignKeyViolation) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("create session summary: %w", err)
	}
	return &created, nil
}

func (r *sessionRepository) List(ctx context.Context, query *repository.ListSessionQuery) ([]entity.SessionSummary, int64, error) {
	var p listSessionsParams
	if err := filterexpr.Bind(query, &p, listSessionsSchema); err != nil {
		return nil, 0, err
	}

	t := r.builder().Table(database.TableSessions)
	where := func() *sql.Predicate {
		preds := []*sql.Predicate{sql.EQ(t.C("user_id"), query.UserID)}
		if p.CreatedAfter != nil {
			preds = append(preds, sql.GTE(t.C("created_at"), p.CreatedAfter.UTC()))
		}
		if p.CreatedBefore != nil {
			preds = append(preds, sql.LTE(t.C("created_at"), p.CreatedBefore.UTC()))
		}
		if p.MinCorrect != nil {
			preds = append(preds, sql.GTE(t.C("correct_answers"), *p.MinCorrect))
		}
		return sql.And(preds...)
	}

	sel := r.builder().Select(sessionColumns...).From(t).Where(where())
	summaries := []entity.SessionSummary{}
	err := r.query(ctx, page(sel, t, p.Ordering, listSessionsSchema.Order, query.Pagination), func(rows *sql.Rows) error {
		var s entity.SessionSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.QuestionsAnswered, &s.CorrectAnswers, &s.MaxCorrectInRow, &s.CreatedAt); err != nil {
			return err
		}
		summaries = append(summaries, s)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list session summaries: %w", err)
	}

	total, err := r.count(ctx, r.builder().Select(sql.Count("*")).From(t).Where(where()))
	if err != nil {
		return nil, 0, fmt.Errorf("count session summaries: %w", err)
	}
	return summaries, total, nil
}
