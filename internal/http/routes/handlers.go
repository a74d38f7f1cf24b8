package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/stravalyze/stravalyze/internal/export"
	"github.com/stravalyze/stravalyze/internal/model"
	"github.com/stravalyze/stravalyze/internal/prompt"
)

func (s *Server) handleAthlete(w http.ResponseWriter, r *http.Request) {
	var athlete model.Athlete
	err := s.withToken(r.Context(), func(accessToken string) error {
		var ferr error
		athlete, ferr = s.Strava.GetAthlete(r.Context(), accessToken)
		return ferr
	})
	if err != nil {
		s.writeUpstream(w, r, err)
		return
	}
	s.saveAthlete(r.Context(), athlete)
	s.writeJSON(w, http.StatusOK, athlete)
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 30)

	var activities []model.Activity
	err := s.withToken(r.Context(), func(accessToken string) error {
		var ferr error
		activities, ferr = s.Strava.GetActivities(r.Context(), accessToken, page, perPage)
		return ferr
	})
	if err != nil {
		s.writeUpstream(w, r, err)
		return
	}
	if activities == nil {
		activities = []model.Activity{}
	}
	s.writeJSON(w, http.StatusOK, activities)
}

type exportRequest struct {
	Format     string           `json:"format"`
	Activities []model.Activity `json:"activities"`
}

// handleExport encodes the selected activities and answers with the
// headers that drive the browser's save dialog. Selection order is
// preserved as sent.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid export request")
		return
	}

	athlete, ok := s.sessionAthlete(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "strava authentication required")
		return
	}

	batch := model.NewExportBatch(athlete, req.Activities, time.Now().UTC().Format(time.RFC3339))
	format := export.ParseFormat(req.Format)

	doc, err := export.Run(batch, format)
	switch {
	case errors.Is(err, export.ErrEmptySelection):
		s.writeError(w, http.StatusBadRequest, "no activities selected")
		return
	case errors.Is(err, export.ErrInvalidBatch):
		// caller contract violation, log loudly and refuse
		hlog.FromRequest(r).Error().Err(err).Msg("invalid export batch")
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("export failed")
		s.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", doc.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.Text))
}

type promptRequest struct {
	Category      string              `json:"category"`
	Profile       model.PromptProfile `json:"profile"`
	ActivityCount int                 `json:"activityCount"`
}

// handlePrompt renders the analysis prompt as plain text; the client
// copies it to the clipboard.
func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid prompt request")
		return
	}

	athlete, ok := s.sessionAthlete(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "strava authentication required")
		return
	}

	category := prompt.ParseCategory(req.Category)
	text := prompt.Generate(category, athlete, req.Profile, req.ActivityCount)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
