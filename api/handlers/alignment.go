package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gqss-bio/gqss-go/pkg/gqss"
)

// AlignRequest represents a request to align a query against a read.
// A missing gap_penalty falls back to the default of 16.
type AlignRequest struct {
	Query      string `json:"query"`
	Read       string `json:"read"`
	GapPenalty *int64 `json:"gap_penalty"`
}

// AlignmentResult represents one aligned orientation.
type AlignmentResult struct {
	AlignedQuery string  `json:"aligned_query"`
	AlignedRead  string  `json:"aligned_read"`
	Score        int64   `json:"score"`
	QueryStart   int     `json:"query_start"`
	QueryStop    int     `json:"query_stop"`
	ReadStart    int     `json:"read_start"`
	ReadStop     int     `json:"read_stop"`
	Length       int     `json:"length"`
	Identical    int     `json:"identical"`
	Gaps         int     `json:"gaps"`
	Mismatches   int     `json:"mismatches"`
	Identity     float64 `json:"identity"`
}

func alignOptions(req AlignRequest) (gqss.Options, bool) {
	opts := gqss.DefaultOptions()
	if req.GapPenalty != nil {
		if *req.GapPenalty < 0 {
			return opts, false
		}
		opts.GapPenalty = *req.GapPenalty
	}
	return opts, true
}

func newAlignmentResult(res *gqss.Result) (AlignmentResult, error) {
	stats, err := gqss.AlignmentStats(res)
	if err != nil {
		return AlignmentResult{}, err
	}

	return AlignmentResult{
		AlignedQuery: res.AlignedX,
		AlignedRead:  res.AlignedY,
		Score:        res.Score,
		QueryStart:   res.StartX,
		QueryStop:    res.StopX,
		ReadStart:    res.StartY,
		ReadStop:     res.StopY,
		Length:       res.Length(),
		Identical:    stats.Identical,
		Gaps:         stats.Gaps(),
		Mismatches:   stats.Mismatches,
		Identity:     res.Identity(),
	}, nil
}

// LocalAlignHandler handles single-orientation local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	opts, ok := alignOptions(req)
	if !ok {
		http.Error(w, `{"error": "gap_penalty: must be non-negative"}`, http.StatusBadRequest)
		return
	}

	query, err := gqss.NewSequence(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	read, err := gqss.NewSequence(req.Read)
	if err != nil {
		http.Error(w, `{"error": "read: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	res, err := gqss.Align(query, read, opts)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	result, err := newAlignmentResult(res)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// SearchResponse represents the alignments of both query orientations.
type SearchResponse struct {
	Forward         AlignmentResult `json:"forward"`
	Reverse         AlignmentResult `json:"reverse"`
	BestOrientation string          `json:"best_orientation"`
}

// SearchHandler aligns the query and its reverse complement against the read.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	opts, ok := alignOptions(req)
	if !ok {
		http.Error(w, `{"error": "gap_penalty: must be non-negative"}`, http.StatusBadRequest)
		return
	}

	query, err := gqss.NewSequence(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	read, err := gqss.NewSequence(req.Read)
	if err != nil {
		http.Error(w, `{"error": "read: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	sr, err := gqss.Search(query, read, opts)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	forward, err := newAlignmentResult(sr.Forward)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	reverse, err := newAlignmentResult(sr.Reverse)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	best := "forward"
	if sr.Best() == sr.Reverse {
		best = "reverse_complement"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SearchResponse{
		Forward:         forward,
		Reverse:         reverse,
		BestOrientation: best,
	})
}

// ScoreResponse represents the best local alignment score.
type ScoreResponse struct {
	Score int64 `json:"score"`
}

// AlignmentScoreHandler handles score-only alignment requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	opts, ok := alignOptions(req)
	if !ok {
		http.Error(w, `{"error": "gap_penalty: must be non-negative"}`, http.StatusBadRequest)
		return
	}

	query, err := gqss.NewSequence(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	read, err := gqss.NewSequence(req.Read)
	if err != nil {
		http.Error(w, `{"error": "read: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	score, err := gqss.Score(query, read, opts)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: score})
}
