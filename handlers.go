package main

import (
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"hangman/internal/dictionary"
	"hangman/internal/game"
	"hangman/internal/types"
)

// healthzHandler returns a JSON health check with dictionary stats.
func (app *App) healthzHandler(c *gin.Context) {
	app.Mu.Lock()
	words, capacity := app.Dict.Len(), app.Dict.Capacity()
	app.Mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": words,
		"capacity":     capacity,
		"uptime":       formatUptime(time.Since(app.StartTime)),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *App) lookupWordHandler(c *gin.Context) {
	word := c.Param("word")
	app.Mu.Lock()
	entry, ok := app.Dict.Lookup(word)
	app.Mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorWordNotFound})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// countPrefixHandler counts words starting with ?prefix=; no prefix counts all.
func (app *App) countPrefixHandler(c *gin.Context) {
	prefix := c.Query("prefix")
	app.Mu.Lock()
	n := app.Dict.CountWithPrefix(prefix)
	app.Mu.Unlock()
	c.JSON(http.StatusOK, PrefixCount{Prefix: prefix, Count: n})
}

func (app *App) addWordHandler(c *gin.Context) {
	var req WordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}
	app.Mu.Lock()
	err := app.Dict.Add(req.Word, req.Definition, req.PartOfSpeech)
	app.Mu.Unlock()
	if err != nil {
		app.dictionaryError(c, err)
		return
	}
	logInfo("%sAdded word %q", requestTag(c.Request.Context()), req.Word)
	c.JSON(http.StatusCreated, types.WordEntry{
		Word:         req.Word,
		PartOfSpeech: req.PartOfSpeech,
		Definition:   req.Definition,
	})
}

func (app *App) editWordHandler(c *gin.Context) {
	var req WordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}
	word := c.Param("word")
	app.Mu.Lock()
	err := app.Dict.Edit(word, req.Definition, req.PartOfSpeech)
	entry, _ := app.Dict.Lookup(word)
	app.Mu.Unlock()
	if err != nil {
		app.dictionaryError(c, err)
		return
	}
	logInfo("%sEdited word %q", requestTag(c.Request.Context()), word)
	c.JSON(http.StatusOK, entry)
}

func (app *App) removeWordHandler(c *gin.Context) {
	word := c.Param("word")
	app.Mu.Lock()
	err := app.Dict.Remove(word)
	app.Mu.Unlock()
	if err != nil {
		app.dictionaryError(c, err)
		return
	}
	logInfo("%sRemoved word %q", requestTag(c.Request.Context()), word)
	c.Status(http.StatusNoContent)
}

// dictionaryError maps dictionary failures to HTTP responses.
func (app *App) dictionaryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorWordNotFound})
	case errors.Is(err, dictionary.ErrDuplicateWord):
		c.JSON(http.StatusConflict, gin.H{"error": ErrorDuplicateWord})
	case errors.Is(err, dictionary.ErrCapacityExceeded):
		c.JSON(http.StatusInsufficientStorage, gin.H{"error": ErrorDictionaryFull})
	case errors.Is(err, dictionary.ErrInvalidWord):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ErrorInvalidWord})
	case errors.Is(err, dictionary.ErrEmptyDictionary):
		c.JSON(http.StatusConflict, gin.H{"error": ErrorEmptyDictionary})
	default:
		logWarn("%sUnexpected dictionary error: %v", requestTag(c.Request.Context()), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// newRoundHandler starts the process's single round, replacing any other.
func (app *App) newRoundHandler(c *gin.Context) {
	var req NewRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}
	difficulty := types.Difficulty(*req.Difficulty)
	if !game.ValidDifficulty(difficulty) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ErrorInvalidDifficulty})
		return
	}
	view, err := app.startRound(c.Request.Context(), difficulty)
	if err != nil {
		app.dictionaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (app *App) roundStateHandler(c *gin.Context) {
	view, err := app.currentRound(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorRoundNotFound})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (app *App) guessHandler(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}
	if utf8.RuneCountInString(req.Letter) != 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ErrorInvalidLetter})
		return
	}
	letter, _ := utf8.DecodeRuneInString(req.Letter)

	resp, err := app.guessLetter(c.Request.Context(), c.Param("id"), letter)
	switch {
	case errors.Is(err, errRoundNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorRoundNotFound})
	case errors.Is(err, game.ErrRoundOver):
		c.JSON(http.StatusConflict, gin.H{"error": ErrorRoundOver, "round": resp.RoundView})
	case err != nil:
		logWarn("%sUnexpected guess error: %v", requestTag(c.Request.Context()), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, resp)
	}
}
