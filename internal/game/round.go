package game

import (
	"fmt"
	"slices"

	"hangman/internal/types"
)

type HintKind string

const (
	HintPartOfSpeech HintKind = "partOfSpeech"
	HintDefinition   HintKind = "definition"
)

type Hint struct {
	Kind HintKind `json:"kind"`
	Text string   `json:"text"`
}

// GuessResult describes the effect of a single guess.
type GuessResult struct {
	Letter         rune
	Found          bool
	Mask           string
	TriesRemaining int
	State          types.RoundState
	Hints          []Hint // hints revealed by this guess
}

// Round is a single game of Hangman. It is not safe for concurrent use.
type Round struct {
	target         types.WordEntry
	difficulty     types.Difficulty
	mask           string
	triesRemaining int
	triesTotal     int
	state          types.RoundState
	guessed        []rune
	hints          []Hint
	posShown       bool
	defShown       bool
}

// NewRound starts a round for entry with the tries allowed by difficulty.
func NewRound(entry types.WordEntry, difficulty types.Difficulty) (*Round, error) {
	tries, err := TriesForDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	r := newRound(entry, tries)
	r.difficulty = difficulty
	return r, nil
}

func newRound(entry types.WordEntry, tries int) *Round {
	r := &Round{
		target:         entry,
		mask:           MaskWord(entry.Word),
		triesRemaining: tries,
		triesTotal:     tries,
		state:          types.RoundActive,
	}
	r.revealHints()
	return r
}

func (r *Round) Target() types.WordEntry      { return r.target }
func (r *Round) Difficulty() types.Difficulty { return r.difficulty }
func (r *Round) Mask() string                 { return r.mask }
func (r *Round) TriesRemaining() int          { return r.triesRemaining }
func (r *Round) TriesTotal() int              { return r.triesTotal }
func (r *Round) State() types.RoundState      { return r.state }
func (r *Round) Over() bool                   { return r.state != types.RoundActive }
func (r *Round) Attempts() string             { return Attempts(r.triesRemaining, r.triesTotal) }
func (r *Round) Guessed() []rune              { return slices.Clone(r.guessed) }
func (r *Round) Hints() []Hint                { return slices.Clone(r.hints) }

// Outcome reports the result of a finished round.
func (r *Round) Outcome() (types.Outcome, bool) {
	switch r.state {
	case types.RoundWon:
		return types.Win, true
	case types.RoundLost:
		return types.Loss, true
	}
	return 0, false
}

// Guess applies one letter. A miss costs a try; repeating a revealed letter
// costs nothing. The win check runs before the loss check.
func (r *Round) Guess(letter rune) (GuessResult, error) {
	if r.Over() {
		return GuessResult{}, fmt.Errorf("guess %q: %w", letter, ErrRoundOver)
	}
	found, mask := RevealLetter(r.target.Word, letter, r.mask)
	r.mask = mask
	r.guessed = append(r.guessed, letter)
	if !found {
		r.triesRemaining--
	}

	var revealed []Hint
	switch {
	case r.mask == r.target.Word:
		r.state = types.RoundWon
	case r.triesRemaining <= 0:
		r.triesRemaining = 0
		r.state = types.RoundLost
	default:
		revealed = r.revealHints()
	}

	return GuessResult{
		Letter:         letter,
		Found:          found,
		Mask:           r.mask,
		TriesRemaining: r.triesRemaining,
		State:          r.state,
		Hints:          revealed,
	}, nil
}

// revealHints records the part of speech at two tries left and the definition
// at one, each at most once.
func (r *Round) revealHints() []Hint {
	var revealed []Hint
	if r.triesRemaining == partOfSpeechHintAt && !r.posShown {
		r.posShown = true
		revealed = append(revealed, Hint{Kind: HintPartOfSpeech, Text: r.target.PartOfSpeech})
	}
	if r.triesRemaining == definitionHintAt && !r.defShown {
		r.defShown = true
		revealed = append(revealed, Hint{Kind: HintDefinition, Text: r.target.Definition})
	}
	r.hints = append(r.hints, revealed...)
	return revealed
}
