// internal/httpserver/server.go
//
// HTTP server wiring for the word-hunt backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/dicesets", "/defs/{word}".
//   - Stateless board tools: POST /board/solve, POST /board/generate.
//   - Game endpoints (optional auth): POST /game/new, /game/guess, /game/end.
//   - Daily Board endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints (require auth): /auth/*, /stats/me, /games/mine.
//   - Database persistence for game progress and user stats.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; routes can still run for guests.
//   - Handlers read the process-wide dictionary loaded by dict.Init.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/joelburton/tboggle/internal/board"
	"github.com/joelburton/tboggle/internal/defs"
	"github.com/joelburton/tboggle/internal/dict"
	"github.com/joelburton/tboggle/internal/game"
	"github.com/joelburton/tboggle/internal/store"
)

// Server bundles router, in-memory game store, and DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
	defs  *defs.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db, defs: defs.NewStore(db)}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"tboggle","endpoints":["/health","/dicesets","POST /board/solve","POST /board/generate","POST /game/new","POST /game/guess","POST /game/end","/daily/*","/defs/{word}","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Board tools — stateless, open to everyone
	s.r.Get("/dicesets", s.handleDiceSets)
	s.r.Post("/board/solve", s.handleSolve)
	s.r.Post("/board/generate", s.handleGenerate)

	// Game endpoints — OPTIONAL AUTH (guests can play)
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/guess", s.handleGuess)
	s.r.With(s.withOptionalAuth()).Post("/game/end", s.handleEndGame)

	// Daily Board — OPTIONAL AUTH (guests can play; result persisted at the end)
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	// Definitions for the post-game word popups
	s.r.Get("/defs/{word}", s.handleDef)

	// Auth + profile/stats (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: dictionary counts
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		words, nodes := dict.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"words": words, "nodes": nodes})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --------------------------- shared payloads --------------------------------

// lengthFreq is one row of the words-by-length histogram.
type lengthFreq struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

func freqs(ws *board.WordSet) []lengthFreq {
	counts := ws.LengthCounts()
	out := make([]lengthFreq, 0, len(counts))
	for _, c := range counts {
		out = append(out, lengthFreq{Length: c.Length, Count: c.Count})
	}
	return out
}

// gameFreq is the live-game variant of the histogram: legal words at a
// length paired with how many the player has found.
type gameFreq struct {
	Length int `json:"length"`
	Legal  int `json:"legal"`
	Found  int `json:"found"`
}

func gameFreqs(g *game.Game) []gameFreq {
	rows := g.LengthFreqs()
	out := make([]gameFreq, 0, len(rows))
	for _, fr := range rows {
		out = append(out, gameFreq{Length: fr.Length, Legal: fr.Legal, Found: fr.Found})
	}
	return out
}

// boardState is the full solver view of a board, legal words included.
// Only the stateless board tools expose this; live games keep the legal
// list hidden until /game/end.
type boardState struct {
	Board        string           `json:"board"`
	Rows         []string         `json:"rows"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	MinLegal     int              `json:"minLegal"`
	LegalWords   []string         `json:"legalWords"`
	LegalScore   int              `json:"legalScore"`
	LegalLongest int              `json:"legalLongest"`
	LengthFreqs  []lengthFreq     `json:"lengthFreqs"`
	Scores       board.ScoreTable `json:"scores"`
}

func gameBoardState(g *game.Game) boardState {
	return boardState{
		Board:        g.Board,
		Rows:         g.Rows(),
		Width:        g.Width,
		Height:       g.Height,
		MinLegal:     g.MinLegal,
		LegalWords:   g.Legal.Words(),
		LegalScore:   g.Legal.Score(),
		LegalLongest: g.Legal.Longest(),
		LengthFreqs:  freqs(g.Legal),
		Scores:       g.Scores,
	}
}

/// writeCoreError maps solver/generator errors onto HTTP statuses:
// bad input → 400, exhausted generation → 422, anything else → 500.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrExhausted):
		var ex *board.ExhaustedError
		tries := 0
		if errors.As(err, &ex) {
			tries = ex.Tries
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "no_board_found", "tries": tries})
	case errors.Is(err, board.ErrInvalidDiceString),
		errors.Is(err, board.ErrDiceCount),
		errors.Is(err, board.ErrInvalidScoreTable),
		errors.Is(err, game.ErrUnknownDiceSet):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("board operation")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
	}
}

// ---------------------------- BOARD TOOLS ----------------------------------

// diceSetRes describes one catalog entry for GET /dicesets.
type diceSetRes struct {
	Name string   `json:"name"`
	Desc string   `json:"desc"`
	Size int      `json:"size"`
	Dice []string `json:"dice"`
}

func (s *Server) handleDiceSets(w http.ResponseWriter, r *http.Request) {
	sets := board.DiceSets()
	out := make([]diceSetRes, 0, len(sets))
	for _, ds := range sets {
		out = append(out, diceSetRes{Name: ds.Name, Desc: ds.Desc, Size: ds.Size, Dice: ds.Strings()})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// solveReq is the payload for POST /board/solve.
// Width/height default to 4x4; minLegal to 3; scores to the standard table.
type solveReq struct {
	Board    string           `json:"board"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	MinLegal *int             `json:"minLegal"`
	Scores   board.ScoreTable `json:"scores"`
}

// handleSolve re-solves a known board (typed in or saved) and returns the
// complete legal word list. Nothing is stored.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Width == 0 && req.Height == 0 {
		req.Width, req.Height = 4, 4
	}
	minLegal := 3
	if req.MinLegal != nil {
		minLegal = *req.MinLegal
	}
	if req.Scores != nil {
		if err := req.Scores.Validate(); err != nil {
			writeCoreError(w, err)
			return
		}
	}

	g, err := game.Restore(dict.Default(), req.Board, req.Width, req.Height, minLegal, req.Scores)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(gameBoardState(g))
}

// generateReq is the payload for POST /board/generate.
// Omitted bounds fall back to the standard constraints (-1 means
// unbounded); an omitted scores table to the standard one.
type generateReq struct {
	DiceSet    string           `json:"diceSet"`
	MinWords   *int             `json:"minWords"`
	MaxWords   *int             `json:"maxWords"`
	MinScore   *int             `json:"minScore"`
	MaxScore   *int             `json:"maxScore"`
	MinLongest *int             `json:"minLongest"`
	MaxLongest *int             `json:"maxLongest"`
	MinLegal   *int             `json:"minLegal"`
	MaxTries   *int             `json:"maxTries"`
	Scores     board.ScoreTable `json:"scores"`
	Seed       int64            `json:"seed"`
}

func (p generateReq) constraints() board.Constraints {
	c := board.DefaultConstraints()
	if p.MinWords != nil {
		c.MinWords = *p.MinWords
	}
	if p.MaxWords != nil {
		c.MaxWords = *p.MaxWords
	}
	if p.MinScore != nil {
		c.MinScore = *p.MinScore
	}
	if p.MaxScore != nil {
		c.MaxScore = *p.MaxScore
	}
	if p.MinLongest != nil {
		c.MinLongest = *p.MinLongest
	}
	if p.MaxLongest != nil {
		c.MaxLongest = *p.MaxLongest
	}
	if p.MinLegal != nil {
		c.MinLegal = *p.MinLegal
	}
	if p.MaxTries != nil {
		c.MaxTries = *p.MaxTries
	}
	return c
}

// generateRes is boardState plus how the board was rolled.
type generateRes struct {
	boardState
	DiceSet string `json:"diceSet"`
	Seed    int64  `json:"seed"`
	Tries   int    `json:"tries"`
}

// handleGenerate rolls boards until one meets the requested constraints
// and returns it fully solved. Nothing is stored.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Scores != nil {
		if err := req.Scores.Validate(); err != nil {
			writeCoreError(w, err)
			return
		}
	}

	g, err := game.New(dict.Default(), game.Options{
		DiceSet:     req.DiceSet,
		Constraints: req.constraints(),
		Scores:      req.Scores,
		Seed:        req.Seed,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(generateRes{
		boardState: gameBoardState(g),
		DiceSet:    g.DiceSet,
		Seed:       g.Seed,
		Tries:      g.Tries,
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	DiceSet  string `json:"diceSet"`  // catalog name; default "4"
	Board    string `json:"board"`    // optional fixed board (typed-in games, testing)
	Duration int    `json:"duration"` // seconds; default 120
	Seed     int64  `json:"seed"`     // optional; 0 rolls randomly
}
type newGameRes struct {
	GameID      string     `json:"gameId"`
	Board       string     `json:"board"`
	Rows        []string   `json:"rows"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	DiceSet     string     `json:"diceSet"`
	Duration    int        `json:"duration"`
	MinLegal    int        `json:"minLegal"`
	WordCount   int        `json:"wordCount"`
	MaxScore    int        `json:"maxScore"`
	LengthFreqs []gameFreq `json:"lengthFreqs"`
}

// handleNewGame creates a new in-memory game and persists a DB "owner" row
// (either user_id or anonymous_id) for history/stats. The legal words stay
// hidden; the client only learns how many there are.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	g, err := game.New(dict.Default(), game.Options{
		DiceSet:  req.DiceSet,
		Board:    strings.TrimSpace(req.Board),
		Duration: req.Duration,
		Seed:     req.Seed,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist owner row; board is stored so history can re-solve it
	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO games (id, user_id, board, dice_set, status, words, score, longest, started_at)
		                     VALUES (?,?,?,?,?,0,0,0,?)`, g.ID, me.ID, g.Board, g.DiceSet, "playing", now)
		if err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("insert user game row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO games (id, anonymous_id, board, dice_set, status, words, score, longest, started_at)
		                     VALUES (?,?,?,?,?,0,0,0,?)`, g.ID, anon, g.Board, g.DiceSet, "playing", now)
		if err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("insert anon game row")
		}
	}

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:      g.ID,
		Board:       g.Board,
		Rows:        g.Rows(),
		Width:       g.Width,
		Height:      g.Height,
		DiceSet:     g.DiceSet,
		Duration:    g.Duration,
		MinLegal:    g.MinLegal,
		WordCount:   g.Legal.Len(),
		MaxScore:    g.Legal.Score(),
		LengthFreqs: gameFreqs(g),
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type guessRes struct {
	Verdict game.Verdict `json:"verdict"`
	Points  int          `json:"points"`
	Score   int          `json:"score"` // running score for found words
	Found   int          `json:"found"` // found word count
	// InDictionary softens a "bad" verdict: the word is real, it just
	// has no path on this board.
	InDictionary bool `json:"inDictionary"`
}

// handleGuess applies a word to an in-memory game and persists progress.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	word := strings.TrimSpace(req.Word)
	verdict, points, err := g.ApplyGuess(word)
	if errors.Is(err, game.ErrFinished) {
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"invalid_word"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist progress (best effort, non-fatal if it fails)
	if verdict == game.VerdictGood {
		ownerClause, ownerArg := s.ownerFilter(w, r)
		_, err := s.db.Exec(`UPDATE games SET words=?, score=?, longest=? WHERE id=? AND `+ownerClause,
			g.Found.Len(), g.Found.Score(), g.Found.Longest(), g.ID, ownerArg)
		if err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("update game progress")
		}
	}

	inDict := false
	if verdict == game.VerdictBad {
		inDict = dict.Default().Contains(word)
	}
	_ = json.NewEncoder(w).Encode(guessRes{
		Verdict:      verdict,
		Points:       points,
		Score:        g.Found.Score(),
		Found:        g.Found.Len(),
		InDictionary: inDict,
	})
}

// endReq/Res payloads for POST /game/end.
type endReq struct {
	GameID string `json:"gameId"`
}
type endRes struct {
	GameID       string     `json:"gameId"`
	Board        string     `json:"board"`
	FoundWords   []string   `json:"foundWords"`
	FoundScore   int        `json:"foundScore"`
	FoundLongest int        `json:"foundLongest"`
	BadWords     []string   `json:"badWords"`
	Missed       []string   `json:"missed"`
	LegalWords   []string   `json:"legalWords"`
	LegalScore   int        `json:"legalScore"`
	LegalLongest int        `json:"legalLongest"`
	LengthFreqs  []gameFreq `json:"lengthFreqs"`
}

func endSummary(g *game.Game) endRes {
	return endRes{
		GameID:       g.ID,
		Board:        g.Board,
		FoundWords:   g.Found.Words(),
		FoundScore:   g.Found.Score(),
		FoundLongest: g.Found.Longest(),
		BadWords:     g.Bad.Words(),
		Missed:       g.Missed(),
		LegalWords:   g.Legal.Words(),
		LegalScore:   g.Legal.Score(),
		LegalLongest: g.Legal.Longest(),
		LengthFreqs:  gameFreqs(g),
	}
}

// handleEndGame finishes a game, reveals the full legal list, and updates
// user stats in a best-effort transaction. Calling it again just returns
// the same summary.
func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	var req endReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	first := !g.Finished
	g.End()
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	if first {
		ownerClause, ownerArg := s.ownerFilter(w, r)
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)

		tx, err := s.db.Begin()
		if err == nil {
			defer func() { _ = tx.Rollback() }()
			if _, err := tx.Exec(`UPDATE games SET status=?, words=?, score=?, longest=?, finished_at=? WHERE id=? AND `+ownerClause,
				"done", g.Found.Len(), g.Found.Score(), g.Found.Longest(),
				time.Now().UTC().Format(time.RFC3339), g.ID, ownerArg); err != nil {
				log.Warn().Err(err).Msg("finish game")
			}
			if me != nil {
				if err := s.bumpStats(tx, me.ID, g.Found.Score(), g.Found.Len()); err != nil {
					log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
				}
			}
			_ = tx.Commit()
		}
	}

	_ = json.NewEncoder(w).Encode(endSummary(g))
}

// ownerFilter returns the SQL owner clause and argument for the current
// requester: user_id for logged-in users, anonymous_id otherwise.
func (s *Server) ownerFilter(w http.ResponseWriter, r *http.Request) (string, any) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return `user_id=?`, any(me.ID)
	}
	return `anonymous_id=?`, any(s.ensureAnonID(w, r))
}

// --------------------------- DEFINITIONS -----------------------------------

// handleDef serves a short definition for a word, empty when unknown.
func (s *Server) handleDef(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	def, err := s.defs.Lookup(r.Context(), word)
	if err != nil {
		log.Error().Err(err).Str("word", word).Msg("definition lookup")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"word":       strings.ToLower(strings.TrimSpace(word)),
		"definition": def,
	})
}
