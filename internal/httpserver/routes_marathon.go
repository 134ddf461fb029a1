// internal/httpserver/routes_marathon.go
//
// HTTP routes for marathon mode, stepped one guess per request:
//   - POST /marathon/new    → start a session (mode "daily" seeds the
//     target sequence deterministically from the date + salt)
//   - POST /marathon/guess  → submit one guess
//   - POST /marathon/quit   → abandon the run
//   - GET  /marathon/state  → current snapshot
//
// Sessions live in the in-memory store; a signed HS256 token binds a
// client to its session id so ids cannot be guessed or hijacked.

package httpserver

import (
	"encoding/json"
	"errors"
	mrand "math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/emacsmirror/wordel/internal/daily"
	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/play"
	"github.com/emacsmirror/wordel/internal/words"
)

// marathonServer wraps dependencies for /marathon endpoints.
type marathonServer struct {
	srv  *Server
	salt string
}

// mountMarathon registers all /marathon routes.
func (s *Server) mountMarathon(r chi.Router) {
	ms := &marathonServer{srv: s, salt: getEnv("DAILY_SALT", "local_dev_salt")}
	r.Route("/marathon", func(r chi.Router) {
		r.Post("/new", ms.handleNew)
		r.Post("/guess", ms.handleGuess)
		r.Post("/quit", ms.handleQuit)
		r.Get("/state", ms.handleState)
	})
}

// -----------------------------------------------------------------------------
// /marathon/new

type marathonNewReq struct {
	Mode string `json:"mode"` // "" | "daily"
}
type marathonNewRes struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	Date      string    `json:"date,omitempty"` // set for daily mode
	Step      play.Step `json:"step"`
}

// handleNew starts a marathon session and returns its signed token.
// Daily mode derives the RNG from the current date so everyone plays
// the same target sequence.
func (ms *marathonServer) handleNew(w http.ResponseWriter, r *http.Request) {
	var req marathonNewReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	rng := words.NewRNG()
	date := ""
	if strings.EqualFold(req.Mode, "daily") {
		now := time.Now().UTC()
		rng = mrand.New(mrand.NewSource(daily.Seed(now, ms.salt)))
		date = daily.DateKey(now)
	}

	sess := play.NewSession(play.Config{
		BaseLength:   ms.srv.cfg.BaseLength,
		AttemptLimit: ms.srv.cfg.AttemptLimit,
		Illegal:      ms.srv.illegal,
		Load:         ms.srv.loader,
		RNG:          rng,
	})
	if err := ms.srv.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	token, err := signSession(sess.SessionID())
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(marathonNewRes{
		SessionID: sess.SessionID(),
		Token:     token,
		Date:      date,
		Step:      sess.Snapshot(),
	})
}

// -----------------------------------------------------------------------------
// /marathon/guess, /marathon/quit, /marathon/state

type marathonGuessReq struct {
	Guess string `json:"guess"`
}
type marathonStepRes struct {
	Step play.Step `json:"step"`
}

func (ms *marathonServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess, ok := ms.session(w, r)
	if !ok {
		return
	}
	var req marathonGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	step, err := sess.Guess(req.Guess)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		// The turn is not consumed; the client re-prompts.
		http.Error(w, `{"error":"not in dictionary"}`, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, play.ErrFinished), errors.Is(err, game.ErrRoundOver):
		http.Error(w, `{"error":"marathon_finished"}`, http.StatusConflict)
		return
	case err != nil:
		http.Error(w, `{"error":"guess_failed"}`, http.StatusInternalServerError)
		return
	}

	if step.Finished {
		_ = ms.srv.store.Delete(r.Context(), sess.SessionID())
	}
	_ = json.NewEncoder(w).Encode(marathonStepRes{Step: step})
}

func (ms *marathonServer) handleQuit(w http.ResponseWriter, r *http.Request) {
	sess, ok := ms.session(w, r)
	if !ok {
		return
	}
	step, err := sess.Quit()
	if err != nil {
		http.Error(w, `{"error":"marathon_finished"}`, http.StatusConflict)
		return
	}
	_ = ms.srv.store.Delete(r.Context(), sess.SessionID())
	_ = json.NewEncoder(w).Encode(marathonStepRes{Step: step})
}

func (ms *marathonServer) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := ms.session(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(marathonStepRes{Step: sess.Snapshot()})
}

// session authenticates the request's bearer token and resolves the
// marathon session it names. On failure it has already written the
// error response.
func (ms *marathonServer) session(w http.ResponseWriter, r *http.Request) (*play.Session, bool) {
	id, err := parseSessionToken(bearerToken(r))
	if err != nil {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return nil, false
	}
	stored, err := ms.srv.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return nil, false
	}
	sess, ok := stored.(*play.Session)
	if !ok {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// ------------------------------ session tokens ------------------------------

func sessionSecret() []byte {
	return []byte(getEnv("SESSION_SECRET", "dev_secret_change_me"))
}

// signSession creates an HS256 token naming a session id, valid 24h.
func signSession(id string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	return t.SignedString(sessionSecret())
}

// parseSessionToken verifies a token and extracts the session id.
func parseSessionToken(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", errors.New("missing token")
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	id, _ := claims["sid"].(string)
	if id == "" {
		return "", errors.New("invalid token")
	}
	return id, nil
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
