package repository

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/database"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
	"github.com/Swatkovich/cortexex-sub000/pkg/filterexpr"
)

var entryColumns = []string{"id", "theme_id", "word", "description", "translation", "created_at", "updated_at"}

type languageEntryRepository struct {
	store
}

// NewLanguageEntryRepository constructs an ent sql backed vocabulary repository.
func NewLanguageEntryRepository(drv dialect.Driver) repository.LanguageEntryRepository {
	return &languageEntryRepository{store{drv: drv}}
}

type listEntriesParams struct {
	filterexpr.Ordering

	WordPrefix *string
	Words      []string
}

func (r *languageEntryRepository) Create(ctx context.Context, e *entity.LanguageEntry) (*entity.LanguageEntry, error) {
	insert := r.builder().Insert(database.TableLanguageEntries).
		Columns("theme_id", "word", "description", "translation", "created_at", "updated_at").
		Values(e.ThemeID, e.Word, e.Description, e.Translation, e.CreatedAt.UTC(), e.UpdatedAt.UTC()).
		Returning("id")

	created := *e
	if _, err := r.queryOne(ctx, insert, func(rows *sql.Rows) error {
		return rows.Scan(&created.ID)
	}); err != nil {
		if errors.Is(err, errForeignKeyViolation) {
			return nil, entity.ErrThemeNotFound
		}
		return nil, fmt.Errorf("create language entry: %w", err)
	}
	return &created, nil
}

func (r *languageEntryRepository) Update(ctx context.Context, e *entity.LanguageEntry) (*entity.LanguageEntry, error) {
	update := r.builder().Update(database.TableLanguageEntries).
		Set("word", e.Word).
		Set("description", e.Description).
		Set("translation", e.Translation).
		Set("updated_at", e.UpdatedAt.UTC()).
		Where(sql.EQ("id", e.ID))

	n, err := r.exec(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update language entry: %w", err)
	}
	if n == 0 {
		return nil, entity.ErrEntryNotFound
	}
	return r.GetByID(ctx, e.ID)
}

func (r *languageEntryRepository) GetByID(ctx context.Context, id int64) (*entity.LanguageEntry, error) {
	t := r.builder().Table(database.TableLanguageEntries)
	entries, err := r.scanEntries(ctx, r.builder().Select(entryColumns...).From(t).Where(sql.EQ(t.C("id"), id)).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("get language entry: %w", err)
	}
	if len(entries) == 0 {
		return nil, entity.ErrEntryNotFound
	}
	return &entries[0], nil
}

func (r *languageEntryRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, r.builder().Delete(database.TableLanguageEntries).Where(sql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete language entry: %w", err)
	}
	if n == 0 {
		return entity.ErrEntryNotFound
	}
	return nil
}

func (r *languageEntryRepository) List(ctx context.Context, query *repository.ListEntryQuery) ([]entity.LanguageEntry, int64, error) {
	var p listEntriesParams
	if err := filterexpr.Bind(query, &p, listEntriesSchema); err != nil {
		return nil, 0, err
	}

	t := r.builder().Table(database.TableLanguageEntries)
	where := func() *sql.Predicate {
		preds := []*sql.Predicate{sql.EQ(t.C("theme_id"), query.ThemeID)}
		if p.WordPrefix != nil {
			preds = append(preds, sql.HasPrefix(t.C("word"), *p.WordPrefix))
		}
		if len(p.Words) > 0 {
			preds = append(preds, sql.In(t.C("word"), stringArgs(p.Words)...))
		}
		return sql.And(preds...)
	}

	sel := r.builder().Select(entryColumns...).From(t).Where(where())
	entries, err := r.scanEntries(ctx, page(sel, t, p.Ordering, listEntriesSchema.Order, query.Pagination))
	if err != nil {
		return nil, 0, fmt.Errorf("list language entries: %w", err)
	}
	total, err := r.count(ctx, r.builder().Select(sql.Count("*")).From(t).Where(where()))
	if err != nil {
		return nil, 0, fmt.Errorf("count language entries: %w", err)
	}
	return entries, total, nil
}

func (r *languageEntryRepository) ListByThemes(ctx context.Context, themeIDs []int64) ([]entity.LanguageEntry, error) {
	if len(themeIDs) == 0 {
		return []entity.LanguageEntry{}, nil
	}
	t := r.builder().Table(database.TableLanguageEntries)
	sel := r.builder().Select(entryColumns...).From(t).
		Where(sql.In(t.C("theme_id"), int64Args(themeIDs)...)).
		OrderBy(t.C("id"))
	entries, err := r.scanEntries(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list language entries by themes: %w", err)
	}
	return entries, nil
}

// OwnedIDs joins entries to their theme so only entries in the user's own
// themes survive.
func (r *languageEntryRepository) OwnedIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	e := r.builder().Table(database.TableLanguageEntries)
	th := r.builder().Table(database.TableThemes)
	sel := r.builder().Select(e.C("id")).From(e).
		Join(th).On(e.C("theme_id"), th.C("id")).
		Where(sql.And(sql.In(e.C("id"), int64Args(ids)...), sql.EQ(th.C("user_id"), userID)))

	out := []int64{}
	err := r.query(ctx, sel, func(rows *sql.Rows) error {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		out = append(out, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filter owned language entries: %w", err)
	}
	return out, nil
}

func (r *languageEntryRepository) scanEntries(ctx context.Context, sel *sql.Selector) ([]entity.LanguageEntry, error) {
	entries := []entity.LanguageEntry{}
	err := r.query(ctx, sel, func(rows *sql.Rows) error {
		var e entity.LanguageEntry
		if err := rows.Scan(&e.ID, &e.ThemeID, &e.Word, &e.Description, &e.Translation, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}
