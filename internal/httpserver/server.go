// internal/httpserver/server.go
//
// HTTP adapter for the game engine. This is an interaction boundary,
// not the engine: handlers translate requests into state-machine calls
// and engine errors into JSON responses.
//
// Surface:
//   - Diagnostics: "/", "/health", "/debug/words".
//   - Practice rounds: POST /round/new, POST /round/guess — one round
//     at fixed difficulty, in-memory only.
//   - Marathon: mounted under /marathon (see routes_marathon.go).

package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/emacsmirror/wordel/internal/config"
	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/play"
	"github.com/emacsmirror/wordel/internal/store"
	"github.com/emacsmirror/wordel/internal/words"
)

// Server bundles router, session store, and game configuration.
type Server struct {
	r       *chi.Mux
	store   store.Store
	cfg     config.Config
	illegal *regexp.Regexp
	loader  play.Loader
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg config.Config) *Server {
	illegal, err := cfg.Illegal()
	if err != nil {
		// Config is validated at load; a bad pattern here is a bug.
		log.Error().Err(err).Msg("illegal pattern rejected, using default")
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		cfg:     cfg,
		illegal: illegal,
		loader:  play.SourceLoader(cfg.Source()),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordel","endpoints":["/health","POST /round/new","POST /round/guess","/marathon/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleDebugWords)

	s.r.Post("/round/new", s.handleNewRound)
	s.r.Post("/round/guess", s.handleRoundGuess)

	s.mountMarathon(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ---------------------------- practice rounds ------------------------------

// roundSession is a single practice round held in the session store.
type roundSession struct {
	id    string
	mu    sync.Mutex
	round *game.Round
}

func (rs *roundSession) SessionID() string { return rs.id }

type newRoundReq struct {
	Length int    `json:"length"` // 0 uses the configured base length
	Answer string `json:"answer"` // optional fixed target (testing)
}
type newRoundRes struct {
	RoundID      string `json:"roundId"`
	Length       int    `json:"length"`
	AttemptLimit int    `json:"attemptLimit"`
}

func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	length := req.Length
	if length <= 0 {
		length = s.cfg.BaseLength
	}
	cands, err := s.loader(words.Exact(length, s.illegal))
	if err != nil {
		log.Error().Err(err).Int("length", length).Msg("load candidates")
		http.Error(w, `{"error":"no_words"}`, http.StatusInternalServerError)
		return
	}
	target := req.Answer
	if target == "" {
		target = cands.Pick(words.NewRNG())
	}

	rs := &roundSession{id: genID(), round: game.NewRound(target, cands, s.cfg.AttemptLimit)}
	if err := s.store.Save(r.Context(), rs); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newRoundRes{RoundID: rs.id, Length: length, AttemptLimit: s.cfg.AttemptLimit})
}

type roundGuessReq struct {
	RoundID string `json:"roundId"`
	Guess   string `json:"guess"`
}
type roundGuessRes struct {
	Row      game.ScoredGuess   `json:"row"`
	Board    []game.ScoredGuess `json:"board"`
	Attempts int                `json:"attempts"`
	State    game.State         `json:"state"`
	Message  string             `json:"message,omitempty"`
}

func (s *Server) handleRoundGuess(w http.ResponseWriter, r *http.Request) {
	var req roundGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.RoundID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	rs, ok := sess.(*roundSession)
	if !ok {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	row, err := rs.round.Apply(req.Guess)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		http.Error(w, `{"error":"not in dictionary"}`, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, game.ErrRoundOver):
		http.Error(w, `{"error":"round_over"}`, http.StatusConflict)
		return
	case err != nil:
		http.Error(w, `{"error":"guess_failed"}`, http.StatusInternalServerError)
		return
	}

	res := roundGuessRes{
		Row:      row,
		Board:    rs.round.History(),
		Attempts: rs.round.Attempts(),
		State:    rs.round.State(),
	}
	if rs.round.State().Terminal() {
		res.Message = play.OutcomeMessage(rs.round.State(), rs.round.Target())
		_ = s.store.Delete(r.Context(), rs.id)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ diagnostics --------------------------------

// handleDebugWords reports candidate counts per word length from the
// configured source.
func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	cands, err := words.Load(s.cfg.Source(), words.Rules{MinLen: 1, MaxLen: 64, Illegal: s.illegal})
	if err != nil {
		http.Error(w, `{"error":"no_words"}`, http.StatusInternalServerError)
		return
	}
	counts := map[string]int{}
	for _, word := range cands.Words() {
		counts[strconv.Itoa(len(word))]++
	}
	_ = json.NewEncoder(w).Encode(counts)
}

// ------------------------------- small util --------------------------------

// genID creates a compact 16-hex-char crypto-random identifier.
func genID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
