package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"

	"hangman/internal/dictionary"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	logInfo("Starting Hangman in %s mode (%s)", cfg.Mode,
		map[bool]string{true: "production", false: "development"}[cfg.IsProduction])

	dict, report, err := dictionary.LoadFile(cfg.DictionaryFile, cfg.DictionaryCapacity, newRNG(cfg.RandomSeed))
	if err != nil {
		logFatal("Failed to load dictionary: %v", err)
	}
	logInfo("Loaded %d words from %s (%d malformed, %d duplicate lines skipped)",
		report.Loaded, cfg.DictionaryFile, report.Malformed, report.Duplicates)
	if report.Truncated {
		logInfo("Dictionary capacity %d reached, remaining lines ignored", dict.Capacity())
	}

	app := newApp(cfg, dict)

	switch cfg.Mode {
	case ModeHTTP:
		app.startServer(cfg)
	default:
		if err := app.runConsole(os.Stdin, os.Stdout); err != nil {
			logFatal("Console loop failed: %v", err)
		}
	}
}

func newApp(cfg Config, dict *dictionary.Dictionary) *App {
	return &App{
		Dict:           dict,
		IsProduction:   cfg.IsProduction,
		StartTime:      time.Now(),
		LimiterMap:     make(map[string]*rate.Limiter),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}
}

// newRouter wires the maintenance routes and the single-round routes.
func (app *App) newRouter() *gin.Engine {
	if app.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteHealth, app.healthzHandler)

	router.GET(RouteWords, app.countPrefixHandler)
	router.GET(RouteWord, app.lookupWordHandler)
	router.POST(RouteWords, app.rateLimitMiddleware(), app.addWordHandler)
	router.PUT(RouteWord, app.rateLimitMiddleware(), app.editWordHandler)
	router.DELETE(RouteWord, app.rateLimitMiddleware(), app.removeWordHandler)

	router.POST(RouteRound, app.rateLimitMiddleware(), app.newRoundHandler)
	router.GET(RouteRoundByID, app.roundStateHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)

	return router
}

func (app *App) startServer(cfg Config) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", cfg.Port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
