package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/parse", h.handleParse)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
}

// statusFor maps solver errors to HTTP status codes: malformed input is a
// client error, a contradictory puzzle is semantically unprocessable.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrInconsistent):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ---- Parse ----

type parseReq struct {
	Puzzle string `json:"puzzle"`
}

type parseResp struct {
	Board [9][9]uint8 `json:"board,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req parseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(parseResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := h.UC.Parse(r.Context(), req.Puzzle)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(parseResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(parseResp{Board: *g})
}

// ---- Solve ----

type solveReq struct {
	Puzzle string `json:"puzzle"`
}

type solveResp struct {
	Solvable   bool        `json:"solvable"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	Steps      int         `json:"steps,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), req.Puzzle)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), Steps: st.Steps, DurationMs: st.Duration.Milliseconds()})
		return
	}
	if out == nil {
		_ = json.NewEncoder(w).Encode(solveResp{Solvable: false, Steps: st.Steps, DurationMs: st.Duration.Milliseconds()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{Solvable: true, Board: *out, Steps: st.Steps, DurationMs: st.Duration.Milliseconds()})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), domain.Grid(req.Board))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board [9][9]uint8 `json:"board"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), domain.Grid(req.Board))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}
