package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"hangman/internal/types"
)

// WordSource supplies the word a round is played on.
type WordSource interface {
	RandomWord() (types.WordEntry, error)
}

// LetterReader yields one guessed letter at a time.
type LetterReader interface {
	ReadLetter() (rune, error)
}

// Input reads whitespace-separated tokens and single letters from a stream.
type Input struct {
	r *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// ReadLetter returns the next non-whitespace character, so "abc" yields three
// letters.
func (in *Input) ReadLetter() (rune, error) {
	for {
		c, _, err := in.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}

// ReadToken returns the next whitespace-separated token.
func (in *Input) ReadToken() (string, error) {
	c, err := in.ReadLetter()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteRune(c)
	for {
		c, _, err := in.r.ReadRune()
		if err == io.EOF || (err == nil && unicode.IsSpace(c)) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		sb.WriteRune(c)
	}
}

// PlayRound draws a word from src and plays one round on the console. It
// returns io.EOF if the input ends before the round is decided.
func PlayRound(src WordSource, difficulty types.Difficulty, in LetterReader, out io.Writer) (types.Outcome, error) {
	entry, err := src.RandomWord()
	if err != nil {
		return types.Loss, err
	}
	round, err := NewRound(entry, difficulty)
	if err != nil {
		return types.Loss, err
	}
	return playRound(round, in, out)
}

// playRound drives an already started round until it is decided.
func playRound(round *Round, in LetterReader, out io.Writer) (types.Outcome, error) {
	for _, h := range round.Hints() {
		printHint(out, h)
	}
	for !round.Over() {
		fmt.Fprintf(out, "Life: %s\n", round.Attempts())
		fmt.Fprintf(out, "Word: %s\n", round.Mask())
		fmt.Fprint(out, "Enter a letter: ")
		letter, err := in.ReadLetter()
		if err != nil {
			fmt.Fprintln(out)
			return types.Loss, err
		}
		res, err := round.Guess(letter)
		if err != nil {
			return types.Loss, err
		}
		for _, h := range res.Hints {
			printHint(out, h)
		}
	}

	outcome, _ := round.Outcome()
	if outcome == types.Loss {
		fmt.Fprintf(out, "The word is %q. Better luck next time! You're getting the ..ahem.. hang of it.\n", round.Target().Word)
	} else {
		fmt.Fprintln(out, "Congrats!!!")
	}
	return outcome, nil
}

func printHint(out io.Writer, h Hint) {
	switch h.Kind {
	case HintPartOfSpeech:
		fmt.Fprintf(out, "The part of speech of the word is %s\n", h.Text)
	case HintDefinition:
		fmt.Fprintf(out, "Definition of the word: %s\n", h.Text)
	}
}
