package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/database"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

type statsRepository struct {
	store
}

// NewStatsRepository constructs the aggregate read model behind the dashboards.
func NewStatsRepository(drv dialect.Driver) repository.StatsRepository {
	return &statsRepository{store{drv: drv}}
}

// themeScope restricts th to the themes covered by scope.
func themeScope(th *sql.SelectTable, scope repository.StatsScope) []*sql.Predicate {
	var preds []*sql.Predicate
	if scope.UserID != nil {
		preds = append(preds, sql.EQ(th.C("user_id"), *scope.UserID))
	}
	if scope.ThemeID != nil {
		preds = append(preds, sql.EQ(th.C("id"), *scope.ThemeID))
	}
	return preds
}

// filtered wraps preds so an empty scope yields no WHERE clause.
func filtered(sel *sql.Selector, preds []*sql.Predicate) *sql.Selector {
	switch len(preds) {
	case 0:
		return sel
	case 1:
		return sel.Where(preds[0])
	default:
		return sel.Where(sql.And(preds...))
	}
}

func (r *statsRepository) ContentTotals(ctx context.Context, scope repository.StatsScope) (entity.ContentTotals, error) {
	var totals entity.ContentTotals
	b := r.builder()

	if scope.UserID == nil && scope.ThemeID == nil {
		users := b.Table(database.TableUsers)
		n, err := r.count(ctx, b.Select(sql.Count("*")).From(users))
		if err != nil {
			return totals, fmt.Errorf("count users: %w", err)
		}
		totals.Users = n
	}

	th := b.Table(database.TableThemes)
	n, err := r.count(ctx, filtered(b.Select(sql.Count("*")).From(th), themeScope(th, scope)))
	if err != nil {
		return totals, fmt.Errorf("count themes: %w", err)
	}
	totals.Themes = n

	q := b.Table(database.TableQuestions)
	th = b.Table(database.TableThemes)
	sel := b.Select(q.C("is_strict"), sql.Count(q.C("id"))).From(q).
		Join(th).On(q.C("theme_id"), th.C("id"))
	sel = filtered(sel, themeScope(th, scope)).GroupBy(q.C("is_strict"))
	err = r.query(ctx, sel, func(rows *sql.Rows) error {
		var (
			strict bool
			count  int64
		)
		if err := rows.Scan(&strict, &count); err != nil {
			return err
		}
		if strict {
			totals.StrictQuestions += count
		} else {
			totals.NonStrictQuestions += count
		}
		return nil
	})
	if err != nil {
		return totals, fmt.Errorf("count questions: %w", err)
	}

	e := b.Table(database.TableLanguageEntries)
	th = b.Table(database.TableThemes)
	sel = b.Select(sql.Count(e.C("id"))).From(e).Join(th).On(e.C("theme_id"), th.C("id"))
	n, err = r.count(ctx, filtered(sel, themeScope(th, scope)))
	if err != nil {
		return totals, fmt.Errorf("count language entries: %w", err)
	}
	totals.Entries = n
	return totals, nil
}

func (r *statsRepository) SessionTotals(ctx context.Context, userID *int64) (entity.SessionTotals, error) {
	var totals entity.SessionTotals
	b := r.builder()
	t := b.Table(database.TableSessions)
	var preds []*sql.Predicate
	if userID != nil {
		preds = append(preds, sql.EQ(t.C("user_id"), *userID))
	}

	agg := b.Select(sql.Count("*"), sql.Sum(t.C("questions_answered")), sql.Max(t.C("max_correct_in_row"))).From(t)
	var sum, best sql.NullInt64
	if _, err := r.queryOne(ctx, filtered(agg, preds), func(rows *sql.Rows) error {
		return rows.Scan(&totals.Games, &sum, &best)
	}); err != nil {
		return totals, fmt.Errorf("aggregate sessions: %w", err)
	}
	totals.QuestionsAnswered = sum.Int64
	totals.BestCorrectInRow = best.Int64
	if totals.Games == 0 {
		return totals, nil
	}

	last := filtered(b.Select(t.C("max_correct_in_row")).From(t), preds).
		OrderBy(sql.Desc(t.C("created_at")), sql.Desc(t.C("id"))).
		Limit(1)
	if _, err := r.queryOne(ctx, last, func(rows *sql.Rows) error {
		return rows.Scan(&totals.LastCorrectInRow)
	}); err != nil {
		return totals, fmt.Errorf("latest session: %w", err)
	}
	return totals, nil
}

func (r *statsRepository) QuestionLevels(ctx context.Context, scope repository.StatsScope) ([]entity.LevelCount, error) {
	b := r.builder()
	m := b.Table(database.TableQuestionMastery)
	q := b.Table(database.TableQuestions)
	th := b.Table(database.TableThemes)
	sel := b.Select(m.C("knowledge_level"), sql.Count(m.C("id"))).From(m).
		Join(q).On(m.C("question_id"), q.C("id")).
		Join(th).On(q.C("theme_id"), th.C("id"))

	preds := append([]*sql.Predicate{sql.EQ(q.C("is_strict"), true)}, themeScope(th, scope)...)
	if scope.UserID != nil {
		preds = append(preds, sql.EQ(m.C("user_id"), *scope.UserID))
	}
	levels, err := r.levelCounts(ctx, filtered(sel, preds).GroupBy(m.C("knowledge_level")))
	if err != nil {
		return nil, fmt.Errorf("group question levels: %w", err)
	}
	return levels, nil
}

func (r *statsRepository) EntryStreaks(ctx context.Context, scope repository.StatsScope) ([]entity.LevelCount, error) {
	b := r.builder()
	m := b.Table(database.TableEntryMastery)
	e := b.Table(database.TableLanguageEntries)
	th := b.Table(database.TableThemes)
	sel := b.Select(m.C("correct_streak"), sql.Count(m.C("id"))).From(m).
		Join(e).On(m.C("entry_id"), e.C("id")).
		Join(th).On(e.C("theme_id"), th.C("id"))

	preds := themeScope(th, scope)
	if scope.UserID != nil {
		preds = append(preds, sql.EQ(m.C("user_id"), *scope.UserID))
	}
	streaks, err := r.levelCounts(ctx, filtered(sel, preds).GroupBy(m.C("correct_streak")))
	if err != nil {
		return nil, fmt.Errorf("group entry streaks: %w", err)
	}
	return streaks, nil
}

func (r *statsRepository) levelCounts(ctx context.Context, sel *sql.Selector) ([]entity.LevelCount, error) {
	out := []entity.LevelCount{}
	err := r.query(ctx, sel, func(rows *sql.Rows) error {
		var lc entity.LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return err
		}
		out = append(out, lc)
		return nil
	})
	return out, err
}
