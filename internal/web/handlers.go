package web

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"

	"github.com/ehrlich-b/twisty/internal/cfen"
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/search"
)

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// SolveRequest is the POST /solve body: either a move-notation scramble
// or a CFEN position, applied to a solved cube in the scramble case.
type SolveRequest struct {
	Scramble  string `json:"scramble,omitempty"`
	CFEN      string `json:"cfen,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
	FirstOnly bool   `json:"first_only,omitempty"`
}

// SolveEvent is one line of the newline-delimited JSON response: either
// a strictly-improving solution or a terminal error.
type SolveEvent struct {
	Moves []string `json:"moves,omitempty"`
	Error string   `json:"error,omitempty"`
}

// handleSolve decodes a SolveRequest and streams SolveEvent lines back
// as the search finds strictly-improving solutions, flushing after
// each one so a client sees progress in real time.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	start, err := solveRequestCube(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = s.maxLen
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	flusher, canFlush := w.(http.Flusher)
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	log := s.log.With().Str("request_id", requestID).Logger()
	stream := search.StreamSolve(s.tables, start, maxLength, log)
	defer stream.Stop()

	wrote := false
	for sol := range stream.Solutions() {
		wrote = true
		moves := make([]string, len(sol.Moves))
		for i, m := range sol.Moves {
			moves[i] = m.String()
		}
		_ = enc.Encode(SolveEvent{Moves: moves})
		bw.Flush()
		if canFlush {
			flusher.Flush()
		}
		if req.FirstOnly {
			break
		}
	}

	if !wrote {
		_ = enc.Encode(SolveEvent{Error: "no solution found within max_length"})
		bw.Flush()
	}
}

func solveRequestCube(req SolveRequest) (cube.Cube, error) {
	if req.CFEN != "" {
		state, err := cfen.Parse(req.CFEN)
		if err != nil {
			return cube.Cube{}, err
		}
		return state.ToCube()
	}
	moves, err := cube.ParseScramble(req.Scramble)
	if err != nil {
		return cube.Cube{}, err
	}
	return cube.Solved.ApplyAll(moves), nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
