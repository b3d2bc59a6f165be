package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{items: map[int64]entity.User{}} }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == u.Name {
			return nil, entity.ErrDuplicateUserName
		}
	}
	r.seq++
	copy := *u
	copy.ID = r.seq
	r.items[copy.ID] = copy
	return &copy, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByName(_ context.Context, name string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, nil
}

type fakeThemeRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]entity.Theme
}

func newFakeThemeRepo() *fakeThemeRepo { return &fakeThemeRepo{items: map[int64]entity.Theme{}} }

func (r *fakeThemeRepo) add(t entity.Theme) entity.Theme {
	created, _ := r.Create(context.Background(), &t)
	return *created
}

func (r *fakeThemeRepo) Create(_ context.Context, t *entity.Theme) (*entity.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *t
	copy.ID = r.seq
	r.items[copy.ID] = copy
	return &copy, nil
}

func (r *fakeThemeRepo) Update(_ context.Context, t *entity.Theme) (*entity.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[t.ID]
	if !ok {
		return nil, entity.ErrThemeNotFound
	}
	existing.Title, existing.Description, existing.Difficulty, existing.UpdatedAt = t.Title, t.Description, t.Difficulty, t.UpdatedAt
	r.items[t.ID] = existing
	return &existing, nil
}

func (r *fakeThemeRepo) GetByID(_ context.Context, id int64) (*entity.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[id]
	if !ok {
		return nil, entity.ErrThemeNotFound
	}
	return &t, nil
}

func (r *fakeThemeRepo) ListOwned(_ context.Context, userID int64, ids []int64) ([]entity.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Theme{}
	for _, id := range ids {
		if t, ok := r.items[id]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeThemeRepo) List(_ context.Context, q *repository.ListThemeQuery) ([]entity.Theme, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Theme{}
	for _, t := range r.items {
		if t.UserID == q.UserID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeThemeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entity.ErrThemeNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeQuestionRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]entity.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{items: map[int64]entity.Question{}}
}

func (r *fakeQuestionRepo) add(q entity.Question) entity.Question {
	created, _ := r.Create(context.Background(), &q)
	return *created
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *q
	copy.ID = r.seq
	r.items[copy.ID] = copy
	return &copy, nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *entity.Question) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[q.ID]; !ok {
		return nil, entity.ErrQuestionNotFound
	}
	r.items[q.ID] = *q
	copy := *q
	return &copy, nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id int64) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.items[id]
	if !ok {
		return nil, entity.ErrQuestionNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entity.ErrQuestionNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeQuestionRepo) List(_ context.Context, q *repository.ListQuestionQuery) ([]entity.Question, int64, error) {
	out, _ := r.ListByThemes(context.Background(), []int64{q.ThemeID})
	return out, int64(len(out)), nil
}

func (r *fakeQuestionRepo) ListByThemes(_ context.Context, themeIDs []int64) ([]entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[int64]bool{}
	for _, id := range themeIDs {
		wanted[id] = true
	}
	out := []entity.Question{}
	for _, q := range r.items {
		if wanted[q.ThemeID] {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeQuestionRepo) StrictIDs(_ context.Context, ids []int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []int64{}
	for _, id := range ids {
		if q, ok := r.items[id]; ok && q.IsStrict {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeEntryRepo struct {
	mu     sync.Mutex
	seq    int64
	items  map[int64]entity.LanguageEntry
	themes *fakeThemeRepo
}

func newFakeEntryRepo(themes *fakeThemeRepo) *fakeEntryRepo {
	return &fakeEntryRepo{items: map[int64]entity.LanguageEntry{}, themes: themes}
}

func (r *fakeEntryRepo) add(e entity.LanguageEntry) entity.LanguageEntry {
	created, _ := r.Create(context.Background(), &e)
	return *created
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.LanguageEntry) (*entity.LanguageEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *e
	copy.ID = r.seq
	r.items[copy.ID] = copy
	return &copy, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *entity.LanguageEntry) (*entity.LanguageEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; !ok {
		return nil, entity.ErrEntryNotFound
	}
	r.items[e.ID] = *e
	copy := *e
	return &copy, nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id int64) (*entity.LanguageEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, entity.ErrEntryNotFound
	}
	return &e, nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entity.ErrEntryNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEntryRepo) List(_ context.Context, q *repository.ListEntryQuery) ([]entity.LanguageEntry, int64, error) {
	out, _ := r.ListByThemes(context.Background(), []int64{q.ThemeID})
	return out, int64(len(out)), nil
}

func (r *fakeEntryRepo) ListByThemes(_ context.Context, themeIDs []int64) ([]entity.LanguageEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[int64]bool{}
	for _, id := range themeIDs {
		wanted[id] = true
	}
	out := []entity.LanguageEntry{}
	for _, e := range r.items {
		if wanted[e.ThemeID] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEntryRepo) OwnedIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error) {
	out := []int64{}
	for _, id := range ids {
		e, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}
		if t, err := r.themes.GetByID(ctx, e.ThemeID); err == nil && t.UserID == userID {
			out = append(out, id)
		}
	}
	return out, nil
}

type ledgerKey struct{ user, item int64 }

type fakeLedger struct {
	mu        sync.Mutex
	questions map[ledgerKey]entity.KnowledgeLevel
	entries   map[ledgerKey]entity.CorrectStreak
	failOn    map[int64]bool
	calls     int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		questions: map[ledgerKey]entity.KnowledgeLevel{},
		entries:   map[ledgerKey]entity.CorrectStreak{},
		failOn:    map[int64]bool{},
	}
}

func (l *fakeLedger) UpsertQuestionMastery(_ context.Context, userID, questionID int64, correct bool) (entity.KnowledgeLevel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.failOn[questionID] {
		return 0, errors.New("boom")
	}
	key := ledgerKey{userID, questionID}
	level, ok := l.questions[key]
	if ok {
		level = level.Apply(correct)
	} else {
		level = entity.SeedKnowledgeLevel(correct)
	}
	l.questions[key] = level
	return level, nil
}

func (l *fakeLedger) UpsertEntryStreak(_ context.Context, userID, entryID int64, correct bool) (entity.CorrectStreak, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.failOn[entryID] {
		return 0, errors.New("boom")
	}
	key := ledgerKey{userID, entryID}
	streak, ok := l.entries[key]
	if ok {
		streak = streak.Apply(correct)
	} else {
		streak = entity.SeedCorrectStreak(correct)
	}
	l.entries[key] = streak
	return streak, nil
}

func (l *fakeLedger) GetQuestionMastery(_ context.Context, userID, questionID int64) (*entity.QuestionMastery, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	level, ok := l.questions[ledgerKey{userID, questionID}]
	if !ok {
		return nil, nil
	}
	return &entity.QuestionMastery{UserID: userID, QuestionID: questionID, Level: level}, nil
}

func (l *fakeLedger) GetEntryMastery(_ context.Context, userID, entryID int64) (*entity.EntryMastery, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	streak, ok := l.entries[ledgerKey{userID, entryID}]
	if !ok {
		return nil, nil
	}
	return &entity.EntryMastery{UserID: userID, EntryID: entryID, Streak: streak}, nil
}

type fakeSessionRepo struct {
	mu    sync.Mutex
	items []entity.SessionSummary
	err   error
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.SessionSummary) (*entity.SessionSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	copy := *s
	copy.ID = int64(len(r.items) + 1)
	r.items = append(r.items, copy)
	return &copy, nil
}

func (r *fakeSessionRepo) List(_ context.Context, q *repository.ListSessionQuery) ([]entity.SessionSummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.SessionSummary{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID == q.UserID {
			out = append(out, r.items[i])
		}
	}
	return out, int64(len(out)), nil
}

type fakeStatsRepo struct {
	content  entity.ContentTotals
	sessions entity.SessionTotals
	levels   []entity.LevelCount
	streaks  []entity.LevelCount
	scopes   []repository.StatsScope
}

func (r *fakeStatsRepo) ContentTotals(_ context.Context, scope repository.StatsScope) (entity.ContentTotals, error) {
	r.scopes = append(r.scopes, scope)
	return r.content, nil
}

func (r *fakeStatsRepo) SessionTotals(context.Context, *int64) (entity.SessionTotals, error) {
	return r.sessions, nil
}

func (r *fakeStatsRepo) QuestionLevels(context.Context, repository.StatsScope) ([]entity.LevelCount, error) {
	return r.levels, nil
}

func (r *fakeStatsRepo) EntryStreaks(context.Context, repository.StatsScope) ([]entity.LevelCount, error) {
	return r.streaks, nil
}
