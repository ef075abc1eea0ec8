package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"hangman/internal/game"
	"hangman/internal/types"
)

var errRoundNotFound = errors.New("round not found")

// startRound replaces the active round with a new one on a random word.
func (app *App) startRound(ctx context.Context, difficulty types.Difficulty) (RoundView, error) {
	app.Mu.Lock()
	defer app.Mu.Unlock()

	entry, err := app.Dict.RandomWord()
	if err != nil {
		return RoundView{}, err
	}
	round, err := game.NewRound(entry, difficulty)
	if err != nil {
		return RoundView{}, err
	}
	if app.Round != nil && !app.Round.Over() {
		logInfo("%sAbandoning round %s", requestTag(ctx), app.RoundID)
	}
	app.Round = round
	app.RoundID = uuid.NewString()
	logInfo("%sNew %s round %s started (%d tries)", requestTag(ctx), difficulty, app.RoundID, round.TriesTotal())
	return app.viewLocked(), nil
}

// currentRound returns a snapshot of the active round if id matches it.
func (app *App) currentRound(id string) (RoundView, error) {
	app.Mu.Lock()
	defer app.Mu.Unlock()
	if app.Round == nil || id != app.RoundID {
		return RoundView{}, fmt.Errorf("%w: %s", errRoundNotFound, id)
	}
	return app.viewLocked(), nil
}

// guessLetter applies a guess to the active round.
func (app *App) guessLetter(ctx context.Context, id string, letter rune) (GuessResponse, error) {
	app.Mu.Lock()
	defer app.Mu.Unlock()
	if app.Round == nil || id != app.RoundID {
		return GuessResponse{}, fmt.Errorf("%w: %s", errRoundNotFound, id)
	}
	res, err := app.Round.Guess(letter)
	if err != nil {
		return GuessResponse{RoundView: app.viewLocked(), Letter: string(letter)}, err
	}
	logInfo("%sRound %s guessed %q (found: %v, tries left %d/%d)",
		requestTag(ctx), id, letter, res.Found, res.TriesRemaining, app.Round.TriesTotal())
	if outcome, over := app.Round.Outcome(); over {
		logInfo("%sRound %s finished: %s. Target word was: %s", requestTag(ctx), id, outcome, app.Round.Target().Word)
	}
	return GuessResponse{
		RoundView: app.viewLocked(),
		Letter:    string(letter),
		Found:     res.Found,
	}, nil
}

// viewLocked builds the client view of the active round. Callers hold app.Mu.
func (app *App) viewLocked() RoundView {
	r := app.Round
	view := RoundView{
		ID:             app.RoundID,
		Difficulty:     r.Difficulty().String(),
		Mask:           r.Mask(),
		Attempts:       r.Attempts(),
		TriesRemaining: r.TriesRemaining(),
		TriesTotal:     r.TriesTotal(),
		State:          string(r.State()),
		Guessed: lo.Map(r.Guessed(), func(c rune, _ int) string {
			return string(c)
		}),
		Hints: r.Hints(),
	}
	if view.Hints == nil {
		view.Hints = []game.Hint{}
	}
	if r.Over() {
		view.Word = r.Target().Word
	}
	return view
}
