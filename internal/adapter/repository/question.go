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

var questionColumns = []string{"id", "theme_id", "text", "type", "is_strict", "options", "answer", "correct_options", "created_at", "updated_at"}

type questionRepository struct {
	store
}

// NewQuestionRepository constructs an ent sql backed question repository.
func NewQuestionRepository(drv dialect.Driver) repository.QuestionRepository {
	return &questionRepository{store{drv: drv}}
}

type listQuestionsParams struct {
	filterexpr.Ordering

	TextPrefix *string
	Type       *string
	Types      []string
	Strict     *bool
}

func (r *questionRepository) Create(ctx context.Context, q *entity.Question) (*entity.Question, error) {
	options, correct, err := encodeQuestionOptions(q)
	if err != nil {
		return nil, err
	}
	insert := r.builder().Insert(database.TableQuestions).
		Columns("theme_id", "text", "type", "is_strict", "options", "answer", "correct_options", "created_at", "updated_at").
		Values(q.ThemeID, q.Text, string(q.Type), q.IsStrict, options, q.Answer, correct, q.CreatedAt.UTC(), q.UpdatedAt.UTC()).
		Returning("id")

	created := *q
	if _, err := r.queryOne(ctx, insert, func(rows *sql.Rows) error {
		return rows.Scan(&created.ID)
	}); err != nil {
		if errors.Is(err, errForeignKeyViolation) {
			return nil, entity.ErrThemeNotFound
		}
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &created, nil
}

func (r *questionRepository) Update(ctx context.Context, q *entity.Question) (*entity.Question, error) {
	options, correct, err := encodeQuestionOptions(q)
	if err != nil {
		return nil, err
	}
	update := r.builder().Update(database.TableQuestions).
		Set("text", q.Text).
		Set("type", string(q.Type)).
		Set("is_strict", q.IsStrict).
		Set("options", options).
		Set("answer", q.Answer).
		Set("correct_options", correct).
		Set("updated_at", q.UpdatedAt.UTC()).
		Where(sql.EQ("id", q.ID))

	n, err := r.exec(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	if n == 0 {
		return nil, entity.ErrQuestionNotFound
	}
	return r.GetByID(ctx, q.ID)
}

func (r *questionRepository) GetByID(ctx context.Context, id int64) (*entity.Question, error) {
	t := r.builder().Table(database.TableQuestions)
	questions, err := r.scanQuestions(ctx, r.builder().Select(questionColumns...).From(t).Where(sql.EQ(t.C("id"), id)).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if len(questions) == 0 {
		return nil, entity.ErrQuestionNotFound
	}
	return &questions[0], nil
}

func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, r.builder().Delete(database.TableQuestions).Where(sql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if n == 0 {
		return entity.ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepository) List(ctx context.Context, query *repository.ListQuestionQuery) ([]entity.Question, int64, error) {
	var p listQuestionsParams
	if err := filterexpr.Bind(query, &p, listQuestionsSchema); err != nil {
		return nil, 0, err
	}

	t := r.builder().Table(database.TableQuestions)
	where := func() *sql.Predicate {
		preds := []*sql.Predicate{sql.EQ(t.C("theme_id"), query.ThemeID)}
		if p.TextPrefix != nil {
			preds = append(preds, sql.HasPrefix(t.C("text"), *p.TextPrefix))
		}
		if p.Type != nil {
			preds = append(preds, sql.EQ(t.C("type"), *p.Type))
		}
		if len(p.Types) > 0 {
			preds = append(preds, sql.In(t.C("type"), stringArgs(p.Types)...))
		}
		if p.Strict != nil {
			preds = append(preds, sql.EQ(t.C("is_strict"), *p.Strict))
		}
		return sql.And(preds...)
	}

	sel := r.builder().Select(questionColumns...).From(t).Where(where())
	questions, err := r.scanQuestions(ctx, page(sel, t, p.Ordering, listQuestionsSchema.Order, query.Pagination))
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	total, err := r.count(ctx, r.builder().Select(sql.Count("*")).From(t).Where(where()))
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}
	return questions, total, nil
}

func (r *questionRepository) ListByThemes(ctx context.Context, themeIDs []int64) ([]entity.Question, error) {
	if len(themeIDs) == 0 {
		return []entity.Question{}, nil
	}
	t := r.builder().Table(database.TableQuestions)
	sel := r.builder().Select(questionColumns...).From(t).
		Where(sql.In(t.C("theme_id"), int64Args(themeIDs)...)).
		OrderBy(t.C("id"))
	questions, err := r.scanQuestions(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list questions by themes: %w", err)
	}
	return questions, nil
}

func (r *questionRepository) StrictIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	t := r.builder().Table(database.TableQuestions)
	sel := r.builder().Select(t.C("id")).From(t).
		Where(sql.And(sql.In(t.C("id"), int64Args(ids)...), sql.EQ(t.C("is_strict"), true)))

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
		return nil, fmt.Errorf("filter strict questions: %w", err)
	}
	return out, nil
}

func (r *questionRepository) scanQuestions(ctx context.Context, sel *sql.Selector) ([]entity.Question, error) {
	questions := []entity.Question{}
	err := r.query(ctx, sel, func(rows *sql.Rows) error {
		var (
			q                      entity.Question
			qType                  string
			rawOptions, rawCorrect []byte
		)
		if err := rows.Scan(&q.ID, &q.ThemeID, &q.Text, &qType, &q.IsStrict, &rawOptions, &q.Answer,
			&rawCorrect, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return err
		}
		q.Type = entity.QuestionType(qType)
		var err error
		if q.Options, err = decodeStrings(rawOptions); err != nil {
			return err
		}
		if q.CorrectOptions, err = decodeStrings(rawCorrect); err != nil {
			return err
		}
		questions = append(questions, q)
		return nil
	})
	return questions, err
}

func encodeQuestionOptions(q *entity.Question) (string, string, error) {
	options, err := encodeStrings(q.Options)
	if err != nil {
		return "", "", err
	}
	correct, err := encodeStrings(q.CorrectOptions)
	if err != nil {
		return "", "", err
	}
	return options, correct, nil
}
