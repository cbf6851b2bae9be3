package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"svw.info/sudoku-csp/internal/hint"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/usecase"
	"svw.info/sudoku-csp/internal/validator"
)

const (
	easy       = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	noSolution = "123456789456789000789010456004567890567890004890004567045678900678900045900045678"
)

func newMux() *http.ServeMux {
	uc := usecase.NewService(solver.NewCSP(), validator.New(), hint.NewSingles())
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func post(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	rec := post(t, newMux(), "/api/solve", solveReq{Puzzle: easy})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp solveResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Solvable {
		t.Fatalf("solvable puzzle reported unsolvable: %+v", resp)
	}
	if resp.Board[0] != [9]uint8{4, 8, 3, 9, 2, 1, 6, 5, 7} {
		t.Fatalf("row 0 = %v", resp.Board[0])
	}
	if resp.Steps < 1 {
		t.Fatalf("steps = %d", resp.Steps)
	}
}

func TestSolveEndpointNoSolution(t *testing.T) {
	rec := post(t, newMux(), "/api/solve", solveReq{Puzzle: noSolution})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp solveResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Solvable || resp.Error != "" {
		t.Fatalf("want solvable=false with no error, got %+v", resp)
	}
}

func TestSolveEndpointErrors(t *testing.T) {
	mux := newMux()
	if rec := post(t, mux, "/api/solve", solveReq{Puzzle: "123"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("short puzzle: status = %d", rec.Code)
	}
	dup := "550000000" + easy[9:]
	if rec := post(t, mux, "/api/solve", solveReq{Puzzle: dup}); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("contradictory puzzle: status = %d", rec.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET: status = %d", rec.Code)
	}
}

func TestParseEndpoint(t *testing.T) {
	rec := post(t, newMux(), "/api/parse", parseReq{Puzzle: easy})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp parseResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Board[0][2] != 3 {
		t.Fatalf("clue (0,2) = %d, want 3", resp.Board[0][2])
	}
}

func TestValidateEndpoint(t *testing.T) {
	var board [9][9]uint8
	board[0][0] = 5
	board[0][7] = 5
	rec := post(t, newMux(), "/api/validate", validateReq{Board: board})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp validateResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || len(resp.Conflicts) == 0 {
		t.Fatalf("row conflict not reported: %+v", resp)
	}
}

func TestHintEndpoint(t *testing.T) {
	var board [9][9]uint8
	for c := 0; c < 8; c++ {
		board[0][c] = uint8(c + 1)
	}
	rec := post(t, newMux(), "/api/hint", hintReq{Board: board})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp hintResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Found || resp.Hint.Value != 9 {
		t.Fatalf("hint = %+v, want value 9", resp)
	}
}
