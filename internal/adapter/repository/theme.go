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

var themeColumns = []string{"id", "user_id", "title", "description", "difficulty", "is_language_topic", "created_at", "updated_at"}

type themeRepository struct {
	store
}

// NewThemeRepository constructs an ent sql backed theme repository.
func NewThemeRepository(drv dialect.Driver) repository.ThemeRepository {
	return &themeRepository{store{drv: drv}}
}

type listThemesParams struct {
	filterexpr.Ordering

	TitlePrefix  *string
	Difficulty   *string
	Difficulties []string
	Language     *bool
}

func (r *themeRepository) Create(ctx context.Context, theme *entity.Theme) (*entity.Theme, error) {
	insert := r.builder().Insert(database.TableThemes).
		Columns("user_id", "title", "description", "difficulty", "is_language_topic", "created_at", "updated_at").
		Values(theme.UserID, theme.Title, theme.Description, string(theme.Difficulty), theme.IsLanguageTopic,
			theme.CreatedAt.UTC(), theme.UpdatedAt.UTC()).
		Returning("id")

	created := *theme
	if _, err := r.queryOne(ctx, insert, func(rows *sql.Rows) error {
		return rows.Scan(&created.ID)
	}); err != nil {
		if errors.Is(err, errForeignKeyViolation) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return &created, nil
}

// Update rewrites the editable attributes. The owner and the language flag
// are never changed here.
func (r *themeRepository) Update(ctx context.Context, theme *entity.Theme) (*entity.Theme, error) {
	update := r.builder().Update(database.TableThemes).
		Set("title", theme.Title).
		Set("description", theme.Description).
		Set("difficulty", string(theme.Difficulty)).
		Set("updated_at", theme.UpdatedAt.UTC()).
		Where(sql.EQ("id", theme.ID))

	n, err := r.exec(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	if n == 0 {
		return nil, entity.ErrThemeNotFound
	}
	return r.GetByID(ctx, theme.ID)
}

func (r *themeRepository) GetByID(ctx context.Context, id int64) (*entity.Theme, error) {
	t := r.builder().Table(database.TableThemes)
	sel := r.builder().Select(themeColumns...).From(t).Where(sql.EQ(t.C("id"), id)).Limit(1)

	themes, err := r.scanThemes(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}
	if len(themes) == 0 {
		return nil, entity.ErrThemeNotFound
	}
	return &themes[0], nil
}

func (r *themeRepository) ListOwned(ctx context.Context, userID int64, ids []int64) ([]entity.Theme, error) {
	if len(ids) == 0 {
		return []entity.Theme{}, nil
	}
	t := r.builder().Table(database.TableThemes)
	sel := r.builder().Select(themeColumns...).From(t).
		Where(sql.And(sql.EQ(t.C("user_id"), userID), sql.In(t.C("id"), int64Args(ids)...))).
		OrderBy(t.C("id"))

	themes, err := r.scanThemes(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list owned themes: %w", err)
	}
	return themes, nil
}

func (r *themeRepository) List(ctx context.Context, query *repository.ListThemeQuery) ([]entity.Theme, int64, error) {
	var p listThemesParams
	if err := filterexpr.Bind(query, &p, listThemesSchema); err != nil {
		return nil, 0, err
	}

	t := r.builder().Table(database.TableThemes)
	where := func() *sql.Predicate {
		preds := []*sql.Predicate{sql.EQ(t.C("user_id"), query.UserID)}
		if p.TitlePrefix != nil {
			preds = append(preds, sql.HasPrefix(t.C("title"), *p.TitlePrefix))
		}
		if p.Difficulty != nil {
			preds = append(preds, sql.EQ(t.C("difficulty"), *p.Difficulty))
		}
		if len(p.Difficulties) > 0 {
			preds = append(preds, sql.In(t.C("difficulty"), stringArgs(p.Difficulties)...))
		}
		if p.Language != nil {
			preds = append(preds, sql.EQ(t.C("is_language_topic"), *p.Language))
		}
		return sql.And(preds...)
	}

	sel := r.builder().Select(themeColumns...).From(t).Where(where())
	themes, err := r.scanThemes(ctx, page(sel, t, p.Ordering, listThemesSchema.Order, query.Pagination))
	if err != nil {
		return nil, 0, fmt.Errorf("list themes: %w", err)
	}

	total, err := r.count(ctx, r.builder().Select(sql.Count("*")).From(t).Where(where()))
	if err != nil {
		return nil, 0, fmt.Errorf("count themes: %w", err)
	}
	return themes, total, nil
}

func (r *themeRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, r.builder().Delete(database.TableThemes).Where(sql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	if n == 0 {
		return entity.ErrThemeNotFound
	}
	return nil
}

func (r *themeRepository) scanThemes(ctx context.Context, sel *sql.Selector) ([]entity.Theme, error) {
	themes := []entity.Theme{}
	err := r.query(ctx, sel, func(rows *sql.Rows) error {
		var (
			theme      entity.Theme
			difficulty string
		)
		if err := rows.Scan(&theme.ID, &theme.UserID, &theme.Title, &theme.Description, &difficulty,
			&theme.IsLanguageTopic, &theme.CreatedAt, &theme.UpdatedAt); err != nil {
			return err
		}
		theme.Difficulty = entity.Difficulty(difficulty)
		themes = append(themes, theme)
		return nil
	})
	return themes, err
}
