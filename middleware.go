package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// getLimiter returns a rate limiter for the given key (usually client IP).
func (app *App) getLimiter(key string) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if lim, ok := app.LimiterMap[key]; ok {
		return lim
	}
	if key == "" {
		logWarn("Rate limiter key is empty")
	}
	rps := app.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), app.RateLimitBurst)
	app.LimiterMap[key] = lim
	return lim
}

// rateLimitMiddleware enforces per-client rate limiting on mutating routes.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !app.getLimiter(c.ClientIP()).Allow() {
			logWarn("%sRate limit exceeded for %s", requestTag(c.Request.Context()), c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrorTooManyRequests})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware tags each request with a uuid so dictionary edits and
// guesses can be traced in the log. A client-supplied X-Request-Id is kept
// only when it parses as a uuid.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(reqID); err != nil {
			if reqID != "" {
				logWarn("Replacing malformed request ID %q for %s %s", reqID, c.Request.Method, c.FullPath())
			}
			reqID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}
