package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hangman/internal/dictionary"
	"hangman/internal/game"
)

type contextKey string

// App holds the process-wide state: one dictionary and at most one round.
type App struct {
	Dict         *dictionary.Dictionary
	Round        *game.Round
	RoundID      string
	Mu           sync.Mutex // guards Dict, Round and RoundID when serving HTTP
	IsProduction bool
	StartTime    time.Time

	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	RateLimitRPS   int
	RateLimitBurst int
}

// WordRequest is the body of add and edit requests.
type WordRequest struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition"`
}

type PrefixCount struct {
	Prefix string `json:"prefix"`
	Count  int    `json:"count"`
}

type NewRoundRequest struct {
	Difficulty *int `json:"difficulty" binding:"required"`
}

type GuessRequest struct {
	Letter string `json:"letter" binding:"required"`
}

// RoundView is the client-facing snapshot of the active round. Word is only
// filled in once the round is over.
type RoundView struct {
	ID             string      `json:"id"`
	Difficulty     string      `json:"difficulty"`
	Mask           string      `json:"mask"`
	Attempts       string      `json:"attempts"`
	TriesRemaining int         `json:"triesRemaining"`
	TriesTotal     int         `json:"triesTotal"`
	State          string      `json:"state"`
	Guessed        []string    `json:"guessed"`
	Hints          []game.Hint `json:"hints"`
	Word           string      `json:"word,omitempty"`
}

type GuessResponse struct {
	RoundView
	Letter string `json:"letter"`
	Found  bool   `json:"found"`
}
