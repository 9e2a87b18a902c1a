package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/KaramelBytes/postpulse/internal/analysis"
	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse reports liveness and what is loaded.
type HealthResponse struct {
	Status    string            `json:"status"`
	Dataset   string            `json:"dataset"`
	Records   int               `json:"records"`
	Accounts  int               `json:"accounts"`
	Coercions dataset.Coercions `json:"coercions"`
	Timestamp time.Time         `json:"timestamp"`
}

// AccountRef is one entry of the account list.
type AccountRef struct {
	Username string `json:"username"`
	Profile  string `json:"profile"`
}

// AccountsResponse lists the accounts in first-seen order.
type AccountsResponse struct {
	Accounts []AccountRef `json:"accounts"`
	Count    int          `json:"count"`
}

// CommentsResponse is the drill-down of one post inside the applied window.
type CommentsResponse struct {
	Account  string             `json:"account"`
	URL      string             `json:"url"`
	Window   analysis.Range     `json:"window"`
	Count    int                `json:"count"`
	Comments []analysis.Comment `json:"comments"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		RequestID: requestID(r),
		Timestamp: time.Now().UTC(),
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Dataset:   s.data.Name,
		Records:   len(s.data.Records),
		Accounts:  len(s.accounts),
		Coercions: s.data.Coercions,
		Timestamp: time.Now().UTC(),
	})
}

// Accounts handles GET /accounts.
func (s *Server) Accounts(w http.ResponseWriter, r *http.Request) {
	refs := make([]AccountRef, len(s.accounts))
	for i, a := range s.accounts {
		refs[i] = AccountRef{Username: a, Profile: dataset.ProfileReference(s.data.Records, a, s.opt.ProfileMarker)}
	}
	writeJSON(w, http.StatusOK, AccountsResponse{Accounts: refs, Count: len(refs)})
}

// Dashboard handles GET /accounts/{username}. Query parameters: from, to
// (dates), from_time, to_time (HH:MM:SS), post (repeatable) and all=true to
// drill into every post.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if !dataset.HasAccount(s.data.Records, username) {
		writeError(w, r, http.StatusNotFound, "account_not_found", fmt.Sprintf("No account named %q", username))
		return
	}
	sel, err := s.selection(r, username)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	start := time.Now()
	d := analysis.Build(s.data.Records, sel, s.opt)
	s.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	s.metrics.PostsReturned.Observe(float64(len(d.Posts)))
	writeJSON(w, http.StatusOK, d)
}

// Comments handles GET /accounts/{username}/comments?url=... using the same
// window parameters as Dashboard.
func (s *Server) Comments(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if !dataset.HasAccount(s.data.Records, username) {
		writeError(w, r, http.StatusNotFound, "account_not_found", fmt.Sprintf("No account named %q", username))
		return
	}
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_parameter", "url is required")
		return
	}
	rows := dataset.ForAccount(s.data.Records, username)
	if !hasPost(rows, url) {
		writeError(w, r, http.StatusNotFound, "post_not_found", fmt.Sprintf("Account %q has no post %s", username, url))
		return
	}
	sel, err := s.selection(r, username)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	rg := analysis.DefaultRange(rows, s.opt.Now())
	if sel.Range != nil {
		rg = sel.Range.Clamp(rg)
	}
	comments := analysis.CommentsFor(analysis.FilterByRange(rows, rg), url)
	writeJSON(w, http.StatusOK, CommentsResponse{
		Account:  username,
		URL:      url,
		Window:   rg,
		Count:    len(comments),
		Comments: comments,
	})
}

// NotFound handles unknown routes.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeError(w, r, http.StatusNotFound, "endpoint_not_found", "The requested endpoint does not exist")
}

func (s *Server) selection(r *http.Request, username string) (analysis.Selection, error) {
	q := r.URL.Query()
	sel := analysis.Selection{Account: username, Posts: q["post"], AllPosts: q.Get("all") == "true"}

	var rg analysis.Range
	set := false
	for _, p := range []struct {
		key string
		dst *time.Time
	}{{"from", &rg.FromDate}, {"to", &rg.ToDate}} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		d, ok := dataset.ParseDate(v, s.config.DateLayouts)
		if !ok {
			return sel, fmt.Errorf("%s: invalid date %q", p.key, v)
		}
		*p.dst, set = d, true
	}
	for _, p := range []struct {
		key string
		dst *dataset.Clock
	}{{"from_time", &rg.FromTime}, {"to_time", &rg.ToTime}} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		c, ok := dataset.ParseClock(v, s.config.TimeLayouts)
		if !ok {
			return sel, fmt.Errorf("%s: invalid time %q", p.key, v)
		}
		*p.dst, set = c, true
	}
	if !rg.FromDate.IsZero() && !rg.ToDate.IsZero() && rg.FromDate.After(rg.ToDate) {
		return sel, fmt.Errorf("from %s is after to %s", q.Get("from"), q.Get("to"))
	}
	if set {
		sel.Range = &rg
	}
	return sel, nil
}

func hasPost(rows []dataset.Record, url string) bool {
	for _, r := range rows {
		if r.URL == url {
			return true
		}
	}
	return false
}
