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
)

// Conflict updates mirror KnowledgeLevel.Apply and CorrectStreak.Apply so the
// read-modify-write happens inside one statement. %[1]s is the stored column.
const (
	levelUp   = "CASE WHEN %[1]s >= 3 THEN 3 WHEN %[1]s < 0 THEN 1 ELSE %[1]s + 1 END"
	levelDown = "CASE WHEN %[1]s <= 0 THEN 0 WHEN %[1]s > 3 THEN 2 ELSE %[1]s - 1 END"
	streakUp  = "CASE WHEN %[1]s >= 2 THEN 3 WHEN %[1]s < 0 THEN 1 ELSE %[1]s + 1 END"
)

type ledgerRepository struct {
	store
	clock func() time.Time
}

// NewLedgerRepository constructs the knowledge ledger over the shared driver.
func NewLedgerRepository(drv dialect.Driver) repository.LedgerRepository {
	return &ledgerRepository{store: store{drv: drv}, clock: time.Now}
}

func (r *ledgerRepository) UpsertQuestionMastery(ctx context.Context, userID, questionID int64, correct bool) (entity.KnowledgeLevel, error) {
	next := levelDown
	if correct {
		next = levelUp
	}
	level, err := r.upsert(ctx, database.TableQuestionMastery, "question_id", "knowledge_level",
		userID, questionID, int(entity.SeedKnowledgeLevel(correct)), func(col string) sql.Querier {
			return sql.Expr(fmt.Sprintf(next, col))
		})
	if errors.Is(err, errForeignKeyViolation) {
		return 0, entity.ErrQuestionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("upsert question mastery: %w", err)
	}
	return entity.KnowledgeLevel(level).Clamp(), nil
}

func (r *ledgerRepository) UpsertEntryStreak(ctx context.Context, userID, entryID int64, correct bool) (entity.CorrectStreak, error) {
	streak, err := r.upsert(ctx, database.TableEntryMastery, "entry_id", "correct_streak",
		userID, entryID, int(entity.SeedCorrectStreak(correct)), func(col string) sql.Querier {
			if !correct {
				return sql.Expr("0")
			}
			return sql.Expr(fmt.Sprintf(streakUp, col))
		})
	if errors.Is(err, errForeignKeyViolation) {
		return 0, entity.ErrEntryNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("upsert entry streak: %w", err)
	}
	return entity.CorrectStreak(streak).Clamp(), nil
}

// upsert inserts a seeded row or applies next to the stored value, returning
// the value written.
func (r *ledgerRepository) upsert(ctx context.Context, table, itemColumn, valueColumn string,
	userID, itemID int64, seed int, next func(col string) sql.Querier) (int, error) {
	insert := r.builder().Insert(table).
		Columns("user_id", itemColumn, valueColumn, "updated_at").
		Values(userID, itemID, seed, r.clock().UTC()).
		OnConflict(
			sql.ConflictColumns("user_id", itemColumn),
			sql.ResolveWith(func(u *sql.UpdateSet) {
				u.Set(valueColumn, next(u.Table().C(valueColumn)))
				u.SetExcluded("updated_at")
			}),
		).
		Returning(valueColumn)

	var value int
	found, err := r.queryOne(ctx, insert, func(rows *sql.Rows) error {
		return rows.Scan(&value)
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%s upsert returned no row", table)
	}
	return value, nil
}

func (r *ledgerRepository) GetQuestionMastery(ctx context.Context, userID, questionID int64) (*entity.QuestionMastery, error) {
	m := entity.QuestionMastery{UserID: userID, QuestionID: questionID}
	var level int
	found, err := r.getRow(ctx, database.TableQuestionMastery, "question_id", "knowledge_level", userID, questionID, &level, &m.UpdatedAt)
	if err != nil || !found {
		return nil, err
	}
	m.Level = entity.KnowledgeLevel(level).Clamp()
	return &m, nil
}

func (r *ledgerRepository) GetEntryMastery(ctx context.Context, userID, entryID int64) (*entity.EntryMastery, error) {
	m := entity.EntryMastery{UserID: userID, EntryID: entryID}
	var streak int
	found, err := r.getRow(ctx, database.TableEntryMastery, "entry_id", "correct_streak", userID, entryID, &streak, &m.UpdatedAt)
	if err != nil || !found {
		return nil, err
	}
	m.Streak = entity.CorrectStreak(streak).Clamp()
	return &m, nil
}

func (r *ledgerRepository) getRow(ctx context.Context, table, itemColumn, valueColumn string, userID, itemID int64, value *int, updatedAt *time.Time) (bool, error) {
	t := r.builder().Table(table)
	sel := r.builder().Select(t.C(valueColumn), t.C("updated_at")).From(t).
		Where(sql.And(sql.EQ(t.C("user_id"), userID), sql.EQ(t.C(itemColumn), itemID))).
		Limit(1)
	found, err := r.queryOne(ctx, sel, func(rows *sql.Rows) error {
		return rows.Scan(value, updatedAt)
	})
	if err != nil {
		return false, fmt.Errorf("get %s row: %w", table, err)
	}
	return found, nil
}
