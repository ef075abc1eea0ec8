package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hangman/internal/dictionary"
	"hangman/internal/types"
)

func setupTestRouter(t *testing.T) (*App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app := testAppWithWords(t,
		[3]string{"cat", "Noun", "a small domesticated carnivorous mammal"},
		[3]string{"car", "Noun", "a road vehicle"},
		[3]string{"dog", "Noun", "a loyal companion"},
	)
	return app, app.newRouter()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestHealthzHandler(t *testing.T) {
	_, router := setupTestRouter(t)
	w := doJSON(t, router, http.MethodGet, RouteHealth, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /healthz returned %d", w.Code)
	}
	body := decode[map[string]any](t, w)
	if body["status"] != "ok" || body["words_loaded"] != float64(3) {
		t.Errorf("unexpected health body: %v", body)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
	if !strings.Contains(w.Header().Get("Cache-Control"), "no-store") {
		t.Errorf("Cache-Control = %q, want no-store", w.Header().Get("Cache-Control"))
	}
}

func TestLookupWordHandler(t *testing.T) {
	_, router := setupTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/words/cat", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /words/cat returned %d", w.Code)
	}
	entry := decode[types.WordEntry](t, w)
	if entry.PartOfSpeech != "Noun" || entry.Definition != "a small domesticated carnivorous mammal" {
		t.Errorf("entry = %+v", entry)
	}
	if w := doJSON(t, router, http.MethodGet, "/words/cow", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET /words/cow returned %d, want 404", w.Code)
	}
}

func TestCountPrefixHandler(t *testing.T) {
	_, router := setupTestRouter(t)
	tests := []struct {
		path string
		want int
	}{
		{"/words", 3},
		{"/words?prefix=ca", 2},
		{"/words?prefix=z", 0},
	}
	for _, tt := range tests {
		w := doJSON(t, router, http.MethodGet, tt.path, nil)
		if got := decode[PrefixCount](t, w); got.Count != tt.want {
			t.Errorf("GET %s count = %d, want %d", tt.path, got.Count, tt.want)
		}
	}
}

func TestAddEditRemoveWordHandlers(t *testing.T) {
	app, router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, RouteWords, WordRequest{Word: "eel", PartOfSpeech: "Noun", Definition: "a long fish"})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /words returned %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPost, RouteWords, WordRequest{Word: "eel", PartOfSpeech: "Verb", Definition: "x"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate POST /words returned %d, want 409", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, RouteWords, WordRequest{Word: "two words"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid POST /words returned %d, want 422", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/words/eel", WordRequest{PartOfSpeech: "Noun", Definition: "a snakelike fish"})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /words/eel returned %d", w.Code)
	}
	if def, _ := app.Dict.Definition("eel"); def != "a snakelike fish" {
		t.Errorf("definition after edit = %q", def)
	}
	if w := doJSON(t, router, http.MethodPut, "/words/owl", WordRequest{}); w.Code != http.StatusNotFound {
		t.Errorf("PUT /words/owl returned %d, want 404", w.Code)
	}

	if w := doJSON(t, router, http.MethodDelete, "/words/car", nil); w.Code != http.StatusNoContent {
		t.Errorf("DELETE /words/car returned %d, want 204", w.Code)
	}
	if w := doJSON(t, router, http.MethodDelete, "/words/car", nil); w.Code != http.StatusNotFound {
		t.Errorf("second DELETE /words/car returned %d, want 404", w.Code)
	}
	if app.Dict.Index("dog") != 1 {
		t.Errorf("Index(dog) = %d after removing car, want 1", app.Dict.Index("dog"))
	}
}

func TestAddWordHandlerFull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	d := dictionary.New(1, newRNG(1))
	if err := d.Add("only", "the single entry", "Adjective"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	router := newApp(Config{RateLimitRPS: 100, RateLimitBurst: 100}, d).newRouter()
	w := doJSON(t, router, http.MethodPost, RouteWords, WordRequest{Word: "extra"})
	if w.Code != http.StatusInsufficientStorage {
		t.Errorf("POST /words on full dictionary returned %d, want 507", w.Code)
	}
}

func TestRoundLifecycle(t *testing.T) {
	app, router := setupTestRouter(t)
	if w := doJSON(t, router, http.MethodPost, RouteRound, gin.H{"difficulty": 5}); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("POST /round with difficulty 5 returned %d, want 422", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, RouteRound, gin.H{}); w.Code != http.StatusBadRequest {
		t.Errorf("POST /round without difficulty returned %d, want 400", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, RouteRound, gin.H{"difficulty": 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /round returned %d: %s", w.Code, w.Body.String())
	}
	view := decode[RoundView](t, w)
	if view.TriesTotal != 5 || view.Attempts != "OOOOO" || view.State != string(types.RoundActive) || view.Word != "" {
		t.Errorf("new round view = %+v", view)
	}
	target := app.Round.Target().Word

	if w := doJSON(t, router, http.MethodGet, "/round/"+view.ID, nil); w.Code != http.StatusOK {
		t.Errorf("GET /round/:id returned %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/round/stale", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET /round/stale returned %d, want 404", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/round/"+view.ID+"/guess", GuessRequest{Letter: "ab"}); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("two-letter guess returned %d, want 422", w.Code)
	}

	var last GuessResponse
	for _, c := range "vwxyz" {
		if strings.ContainsRune(target, c) {
			t.Fatalf("test word %q unexpectedly contains %q", target, c)
		}
		w := doJSON(t, router, http.MethodPost, "/round/"+view.ID+"/guess", GuessRequest{Letter: string(c)})
		if w.Code != http.StatusOK {
			t.Fatalf("guess %q returned %d", c, w.Code)
		}
		last = decode[GuessResponse](t, w)
	}
	if last.State != string(types.RoundLost) || last.Word != target || last.Found {
		t.Errorf("final guess = %+v", last)
	}
	if len(last.Hints) != 2 {
		t.Errorf("hints = %+v, want part of speech and definition", last.Hints)
	}

	w = doJSON(t, router, http.MethodPost, "/round/"+view.ID+"/guess", GuessRequest{Letter: "c"})
	if w.Code != http.StatusConflict {
		t.Errorf("guess after loss returned %d, want 409", w.Code)
	}
}

func TestNewRoundReplacesActiveRound(t *testing.T) {
	_, router := setupTestRouter(t)
	first := decode[RoundView](t, doJSON(t, router, http.MethodPost, RouteRound, gin.H{"difficulty": 0}))
	second := decode[RoundView](t, doJSON(t, router, http.MethodPost, RouteRound, gin.H{"difficulty": 1}))
	if first.ID == second.ID {
		t.Fatal("new round reused the previous ID")
	}
	if w := doJSON(t, router, http.MethodGet, "/round/"+first.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("GET replaced round returned %d, want 404", w.Code)
	}
	if second.TriesTotal != 7 {
		t.Errorf("TriesTotal = %d, want 7", second.TriesTotal)
	}
}

func TestNewRoundEmptyDictionary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := testAppWithWords(t)
	w := doJSON(t, app.newRouter(), http.MethodPost, RouteRound, gin.H{"difficulty": 0})
	if w.Code != http.StatusConflict {
		t.Errorf("POST /round on empty dictionary returned %d, want 409", w.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := testAppWithWords(t)
	app.RateLimitRPS = 1
	app.RateLimitBurst = 1
	router := app.newRouter()
	codes := []int{}
	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodDelete, "/words/none", nil)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusNotFound || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want 404 then 429", codes)
	}
}

func TestGzipResponses(t *testing.T) {
	_, router := setupTestRouter(t)
	req, _ := http.NewRequest(http.MethodGet, "/words/cat", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", w.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader failed: %v", err)
	}
	body, _ := io.ReadAll(zr)
	if !strings.Contains(string(body), "domesticated") {
		t.Errorf("decompressed body = %q", body)
	}
}

func TestRequestIDHeader(t *testing.T) {
	_, router := setupTestRouter(t)
	tests := []struct {
		name    string
		header  string
		keepsID bool
	}{
		{"absent", "", false},
		{"valid uuid", "0b8f1d8e-3c4a-4f6e-9a51-2f7f3c1d9e20", true},
		{"free text", "not-a-uuid", false},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest(http.MethodGet, "/words/cat", nil)
		if tt.header != "" {
			req.Header.Set("X-Request-Id", tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		got := w.Header().Get("X-Request-Id")
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("%s: X-Request-Id %q is not a uuid", tt.name, got)
		}
		if (got == tt.header) != tt.keepsID {
			t.Errorf("%s: X-Request-Id = %q, sent %q", tt.name, got, tt.header)
		}
	}
}
