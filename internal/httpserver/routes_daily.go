// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Board" mode.
// Exposes four endpoints under /daily:
//   - POST /daily/new         → start today's board (one play per user per day)
//   - POST /daily/guess       → submit a word for today's board
//   - POST /daily/end         → finish, persist the result, reveal missed words
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Everyone rolls the same board for a given date: the seed is an HMAC of
// the date, so tomorrow's board cannot be predicted without the salt.
// Sessions are held in memory for active play and persisted to DB at the end.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/joelburton/tboggle/internal/daily"
	"github.com/joelburton/tboggle/internal/dict"
	"github.com/joelburton/tboggle/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	diceSet  string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	Date string
	Game *game.Game
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		diceSet:  getEnv("DAILY_DICE_SET", "4"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Post("/end", dd.handleEnd)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// boardForDate rolls the deterministic daily board.
func (d *dailyServer) boardForDate(now time.Time) (*game.Game, error) {
	return game.New(dict.Default(), game.Options{
		DiceSet: d.diceSet,
		Seed:    daily.BoardSeed(now, d.salt),
	})
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// session looks up the caller's session for a date, nil when absent.
func (d *dailyServer) session(uid, date string) *dailySession {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sessions[uid+"|"+date]
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new. Board fields are empty when the
// caller already played today.
type dailyNewRes struct {
	GameID      string     `json:"gameId"`
	Date        string     `json:"date"`
	Played      bool       `json:"played"`
	Board       string     `json:"board,omitempty"`
	Rows        []string   `json:"rows,omitempty"`
	Width       int        `json:"width,omitempty"`
	Height      int        `json:"height,omitempty"`
	Duration    int        `json:"duration,omitempty"`
	MinLegal    int        `json:"minLegal,omitempty"`
	WordCount   int        `json:"wordCount,omitempty"`
	MaxScore    int        `json:"maxScore,omitempty"`
	LengthFreqs []gameFreq `json:"lengthFreqs,omitempty"`
}

// handleNew creates or reuses a daily session for the current date.
// - If the user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the board.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	now := time.Now().UTC()
	date := daily.DateKey(now)

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		g, err := d.boardForDate(now)
		if err != nil {
			d.mu.Unlock()
			log.Error().Err(err).Str("date", date).Msg("roll daily board")
			http.Error(w, `{"error":"board_failed"}`, http.StatusInternalServerError)
			return
		}
		sess = &dailySession{Date: date, Game: g}
		d.sessions[key] = sess
	}
	d.mu.Unlock()

	g := sess.Game
	_ = json.NewEncoder(w).Encode(dailyNewRes{
		GameID:      g.ID,
		Date:        date,
		Board:       g.Board,
		Rows:        g.Rows(),
		Width:       g.Width,
		Height:      g.Height,
		Duration:    g.Duration,
		MinLegal:    g.MinLegal,
		WordCount:   g.Legal.Len(),
		MaxScore:    g.Legal.Score(),
		LengthFreqs: gameFreqs(g),
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

// handleGuess applies a word to today's daily session.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	date := daily.DateKey(time.Now().UTC())
	sess := d.session(uid, date)
	if sess == nil || sess.Game.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	g := sess.Game
	word := strings.TrimSpace(p.Word)
	verdict, points, err := g.ApplyGuess(word)
	if errors.Is(err, game.ErrFinished) {
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"invalid_word"}`, http.StatusBadRequest)
		return
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

// -----------------------------------------------------------------------------
// /daily/end

// dailyEndReq is the request payload for /daily/end.
type dailyEndReq struct {
	GameID string `json:"gameId"`
}

// dailyEndRes is the full reveal plus the date the result was recorded under.
type dailyEndRes struct {
	endRes
	Date string `json:"date"`
}

// handleEnd finishes today's daily game, records the result (first finish
// wins; the table ignores repeats), and reveals the missed words.
func (d *dailyServer) handleEnd(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyEndReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	date := daily.DateKey(time.Now().UTC())
	sess := d.session(uid, date)
	if sess == nil || sess.Game.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	g := sess.Game
	g.End()
	if err := d.store.InsertResult(r.Context(), daily.Result{
		UserID:  uid,
		Date:    date,
		Board:   g.Board,
		Words:   g.Found.Len(),
		Score:   g.Found.Score(),
		Longest: g.Found.Longest(),
	}); err != nil {
		log.Warn().Err(err).Str("user", uid).Msg("record daily result")
	}

	_ = json.NewEncoder(w).Encode(dailyEndRes{endRes: endSummary(g), Date: date})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now().UTC())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
