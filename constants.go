package main

import "time"

// Run modes
const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

// Configuration defaults
const (
	DefaultDictionaryFile  = "data/dictionary.txt"
	DefaultPort            = "8080"
	DefaultRateLimitRPS    = 5
	DefaultRateLimitBurst  = 10
	DefaultShutdownTimeout = 10 * time.Second
)

// Menu choices; anything from easy to hard is a difficulty level.
const (
	ChoiceEasy   = 0
	ChoiceNormal = 1
	ChoiceHard   = 2
	ChoiceExit   = 3
)

// Route constants
const (
	RouteHealth    = "/healthz"
	RouteWords     = "/words"
	RouteWord      = "/words/:word"
	RouteRound     = "/round"
	RouteRoundByID = "/round/:id"
	RouteGuess     = "/round/:id/guess"
)

// Error message constants
const (
	ErrorWordNotFound      = "Word not found."
	ErrorDuplicateWord     = "Word already exists."
	ErrorDictionaryFull    = "Dictionary is full."
	ErrorInvalidWord       = "Word must be a single token without spaces or underscores."
	ErrorEmptyDictionary   = "Dictionary is empty."
	ErrorInvalidDifficulty = "Difficulty must be 0 (easy), 1 (normal) or 2 (hard)."
	ErrorInvalidLetter     = "Guess must be a single letter."
	ErrorRoundNotFound     = "Round not found."
	ErrorRoundOver         = "Round is over."
	ErrorInvalidRequest    = "Invalid request body."
	ErrorTooManyRequests   = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
