package levels

import "strings"

// Difficulty is a named level difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// ParseDifficulty normalizes a difficulty name. Returns false for unknown names.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d.Rank() == 0 {
		return "", false
	}
	return d, true
}

// Rank orders difficulties from 1 (easy) to 4 (expert). Unknown tiers rank 0.
func (d Difficulty) Rank() int {
	switch Difficulty(strings.ToLower(string(d))) {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 0
	}
}

// Filter returns the summaries whose difficulty is within [lo, hi] by rank.
// A zero bound is open.
func Filter(list []Summary, lo, hi Difficulty) []Summary {
	var out []Summary
	for _, s := range list {
		r := Difficulty(s.Difficulty).Rank()
		if lo != "" && r < lo.Rank() {
			continue
		}
		if hi != "" && r > hi.Rank() {
			continue
		}
		out = append(out, s)
	}
	return out
}
