package entity

import "time"

// Mastery bounds shared by both ledger shapes.
const (
	MinMastery = 0
	MaxMastery = 3
)

// KnowledgeLevel is the signed, clamped mastery score of a strict question.
// Each answer moves it by exactly one step inside [0,3].
type KnowledgeLevel int

// Apply returns the level after one graded answer.
func (l KnowledgeLevel) Apply(correct bool) KnowledgeLevel {
	next := l.Clamp()
	if correct {
		next++
	} else {
		next--
	}
	return next.Clamp()
}

// Clamp forces the level into [0,3].
func (l KnowledgeLevel) Clamp() KnowledgeLevel {
	return KnowledgeLevel(clampMastery(int(l)))
}

// SeedKnowledgeLevel is the level of a ledger row created by its first answer:
// a zero seed with the first delta applied.
func SeedKnowledgeLevel(correct bool) KnowledgeLevel {
	return KnowledgeLevel(MinMastery).Apply(correct)
}

// CorrectStreak counts consecutive correct answers to a language entry.
// Any miss resets it to zero; it saturates at 3.
type CorrectStreak int

// Apply returns the streak after one graded answer.
func (s CorrectStreak) Apply(correct bool) CorrectStreak {
	if !correct {
		return 0
	}
	return (s.Clamp() + 1).Clamp()
}

// Clamp forces the streak into [0,3]; stored values are clamped on read.
func (s CorrectStreak) Clamp() CorrectStreak {
	return CorrectStreak(clampMastery(int(s)))
}

// SeedCorrectStreak is the streak of a ledger row created by its first answer.
func SeedCorrectStreak(correct bool) CorrectStreak {
	if correct {
		return 1
	}
	return 0
}

// QuestionMastery is a ledger row for one (user, strict question) pair.
type QuestionMastery struct {
	UserID     int64
	QuestionID int64
	Level      KnowledgeLevel
	UpdatedAt  time.Time
}

// EntryMastery is a ledger row for one (user, language entry) pair.
type EntryMastery struct {
	UserID    int64
	EntryID   int64
	Streak    CorrectStreak
	UpdatedAt time.Time
}

func clampMastery(v int) int {
	if v < MinMastery {
		return MinMastery
	}
	if v > MaxMastery {
		return MaxMastery
	}
	return v
}
