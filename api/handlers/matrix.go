package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gqss-bio/gqss-go/pkg/gqss"
)

// MatrixScoreRequest represents a substitution score lookup for two symbols.
type MatrixScoreRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// MatrixScoreResponse represents the response for a score lookup.
type MatrixScoreResponse struct {
	Matrix string `json:"matrix"`
	Score  int64  `json:"score"`
}

// MatrixScoreHandler handles substitution matrix lookups.
func MatrixScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req MatrixScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if len(req.A) != 1 {
		http.Error(w, `{"error": "a: must be a single symbol"}`, http.StatusBadRequest)
		return
	}
	if len(req.B) != 1 {
		http.Error(w, `{"error": "b: must be a single symbol"}`, http.StatusBadRequest)
		return
	}

	table := gqss.EDNAFULL()
	score, err := table.Score(req.A[0], req.B[0])
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MatrixScoreResponse{
		Matrix: table.Name(),
		Score:  score,
	})
}
