package quiz

// Streak is the result of scanning one session's verdicts in presentation order.
type Streak struct {
	MaxCorrectInRow     int
	CurrentCorrectInRow int
}

// ScanStreak walks verdicts in order. Anything but a correct verdict,
// including unanswered and ungradable items, resets the running streak.
func ScanStreak(verdicts []Verdict) Streak {
	var s Streak
	for _, v := range verdicts {
		if v.Correct() {
			s.CurrentCorrectInRow++
			if s.CurrentCorrectInRow > s.MaxCorrectInRow {
				s.MaxCorrectInRow = s.CurrentCorrectInRow
			}
			continue
		}
		s.CurrentCorrectInRow = 0
	}
	return s
}
