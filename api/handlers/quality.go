package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gqss-bio/gqss-go/pkg/gqss"
)

// QualityRequest represents a request with Phred+33 encoded base qualities.
type QualityRequest struct {
	Quality string `json:"quality"`
}

// QualityStatsResponse represents summary statistics for base qualities.
type QualityStatsResponse struct {
	Length                int     `json:"length"`
	Min                   int     `json:"min"`
	Mean                  float64 `json:"mean"`
	WorstErrorProbability float64 `json:"worst_error_probability"`
}

// QualityStatsHandler handles quality statistics requests.
func QualityStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req QualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Quality == "" {
		http.Error(w, `{"error": "quality string is required"}`, http.StatusBadRequest)
		return
	}

	q, err := gqss.NewPhred(req.Quality)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(QualityStatsResponse{
		Length:                q.Len(),
		Min:                   q.Min(),
		Mean:                  q.Mean(),
		WorstErrorProbability: gqss.ErrorProbability(q.Min()),
	})
}
