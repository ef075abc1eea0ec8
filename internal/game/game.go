// Package game implements the rules of a Hangman round.
package game

import (
	"errors"
	"fmt"
	"strings"

	"hangman/internal/dictionary"
	"hangman/internal/types"
)

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrRoundOver         = errors.New("round is over")
)

// Markers used by Attempts.
const (
	HitMarker  = "O"
	MissMarker = "X"
)

// Tries allowed per difficulty.
const (
	EasyTries   = 9
	NormalTries = 7
	HardTries   = 5
)

// Remaining-tries thresholds at which hints are revealed.
const (
	partOfSpeechHintAt = 2
	definitionHintAt   = 1
)

// TriesForDifficulty returns the number of wrong guesses a round allows.
// Callers should validate the level first; anything outside Easy..Hard is an
// error.
func TriesForDifficulty(d types.Difficulty) (int, error) {
	switch d {
	case types.Easy:
		return EasyTries, nil
	case types.Normal:
		return NormalTries, nil
	case types.Hard:
		return HardTries, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
}

// ValidDifficulty reports whether d maps to a number of tries.
func ValidDifficulty(d types.Difficulty) bool {
	_, err := TriesForDifficulty(d)
	return err == nil
}

// MaskWord returns one placeholder per character of word.
func MaskWord(word string) string {
	return strings.Repeat(string(dictionary.MaskPlaceholder), len([]rune(word)))
}

// RevealLetter uncovers every position of word equal to letter. The match is
// case-sensitive. It reports whether any position matched; revealing an
// already revealed letter returns the same mask.
func RevealLetter(word string, letter rune, mask string) (bool, string) {
	w := []rune(word)
	m := []rune(mask)
	if len(m) != len(w) {
		m = []rune(MaskWord(word))
	}
	found := false
	for i, c := range w {
		if c == letter {
			m[i] = c
			found = true
		}
	}
	return found, string(m)
}

// Attempts renders remaining tries as hit markers followed by used tries as
// miss markers, e.g. Attempts(2, 7) == "OOXXXXX".
func Attempts(remaining, total int) string {
	remaining = max(0, min(remaining, total))
	return strings.Repeat(HitMarker, remaining) + strings.Repeat(MissMarker, total-remaining)
}
