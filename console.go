package main

import (
	"errors"
	"fmt"
	"io"

	"hangman/internal/game"
	"hangman/internal/types"
)

const (
	welcomeText   = "Welcome to Hangman!"
	menuText      = "0. easy\n1. normal\n2. hard\n3. exit\nChoose a difficulty: "
	horseplayText = "Enough horseplay >_< !\n"
	farewellText  = "If you're hangry, go grab a bite! See what I did there?"
)

// runConsole drives the difficulty menu until the player exits or input ends.
func (app *App) runConsole(r io.Reader, out io.Writer) error {
	in := game.NewInput(r)
	for {
		fmt.Fprintln(out, welcomeText)
		fmt.Fprint(out, menuText)
		choice, err := readChoice(in, out)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == ChoiceExit {
			fmt.Fprintln(out, farewellText)
			return nil
		}

		difficulty := types.Difficulty(choice)
		outcome, err := game.PlayRound(app.Dict, difficulty, in, out)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		logInfo("Round on %s finished: %s", difficulty, outcome)
	}
}

// readChoice re-prompts until it reads a number between ChoiceEasy and
// ChoiceExit.
func readChoice(in *game.Input, out io.Writer) (int, error) {
	for {
		tok, err := in.ReadToken()
		if err != nil {
			return 0, err
		}
		n, err := parseInt(tok)
		if err == nil && n >= ChoiceEasy && n <= ChoiceExit {
			return n, nil
		}
		fmt.Fprint(out, horseplayText+menuText)
	}
}
