package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/planboard/planboard/pkg/cache"
	"github.com/planboard/planboard/pkg/errors"
	"github.com/planboard/planboard/pkg/observability"
	"github.com/planboard/planboard/pkg/pipeline"
	"github.com/planboard/planboard/pkg/plan"
	"github.com/planboard/planboard/pkg/store"
)

// LayoutResponse is the body of POST /v1/layout: the computed board plus any
// advisory validation findings for the posted plan.
type LayoutResponse struct {
	Layout plan.Layout  `json:"layout"`
	Issues []plan.Issue `json:"issues,omitempty"`
}

// MissionSummary is the list-endpoint projection of a stored mission.
type MissionSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StepCount int       `json:"step_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func summarize(m store.Mission) MissionSummary {
	return MissionSummary{
		ID:        m.ID,
		Name:      m.Name(),
		StepCount: len(m.Plan.Steps),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleComputeLayout computes a board for a posted plan without storing it.
func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	p, err := decodePlan(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, planErrorCode(err), err)
		return
	}

	l, _, err := s.runner.LayoutWithCacheInfo(r.Context(), p, pipeline.Options{})
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal, err)
		return
	}

	writeJSON(w, http.StatusOK, LayoutResponse{Layout: l, Issues: p.Validate()})
}

func (s *Server) handleCreateMission(w http.ResponseWriter, r *http.Request) {
	p, err := decodePlan(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, planErrorCode(err), err)
		return
	}

	m := store.New(p)
	if err := s.store.Create(r.Context(), m); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.primeMission(r.Context(), m)

	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := s.store.List(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	summaries := make([]MissionSummary, len(missions))
	for i, m := range missions {
		summaries[i] = summarize(m)
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetMission(w http.ResponseWriter, r *http.Request) {
	m, err := s.fetchMission(r.Context(), chi.URLParam(r, "missionID"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleUpdateMission(w http.ResponseWriter, r *http.Request) {
	p, err := decodePlan(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, planErrorCode(err), err)
		return
	}

	id := chi.URLParam(r, "missionID")
	existing, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	updated := existing.WithPlan(p)
	if err := s.store.Update(r.Context(), updated); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.dropMission(r.Context(), id)

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteMission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "missionID")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.dropMission(r.Context(), id)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMissionLayout(w http.ResponseWriter, r *http.Request) {
	m, err := s.fetchMission(r.Context(), chi.URLParam(r, "missionID"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m.Layout)
}

// handleRenderMission renders a stored mission's board.
// Query params: format (svg|json, plus dot|png for viz=nodelink),
// style (light|dark), viz (board|nodelink), edges=false, detailed=true.
func (s *Server) handleRenderMission(w http.ResponseWriter, r *http.Request) {
	m, err := s.fetchMission(r.Context(), chi.URLParam(r, "missionID"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{
		VizType:   q.Get("viz"),
		Formats:   []string{format},
		Style:     q.Get("style"),
		HideEdges: q.Get("edges") == "false",
		Detailed:  q.Get("detailed") == "true",
	}
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidFormat, err)
		return
	}

	artifacts, err := s.runner.RenderArtifacts(r.Context(), m.Layout, m.Plan, opts)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// =============================================================================
// Mission Read Cache
// =============================================================================

// fetchMission reads a mission through the runner's cache. The cached
// document is dropped on every write, so a hit is never stale.
func (s *Server) fetchMission(ctx context.Context, id string) (store.Mission, error) {
	key := s.missionKey(id)

	if data, hit, err := s.runner.Cache.Get(ctx, key); err == nil && hit {
		var m store.Mission
		if json.Unmarshal(data, &m) == nil {
			observability.Cache().OnCacheHit(ctx, "plan")
			return m, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	m, err := s.store.Get(ctx, id)
	if err != nil {
		return store.Mission{}, err
	}
	s.primeMission(ctx, m)
	return m, nil
}

// primeMission stores a mission document in the cache.
func (s *Server) primeMission(ctx context.Context, m store.Mission) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	if s.runner.Cache.Set(ctx, s.missionKey(m.ID), data, cache.TTLPlan) == nil {
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}
}

// dropMission removes a mission document from the cache.
func (s *Server) dropMission(ctx context.Context, id string) {
	_ = s.runner.Cache.Delete(ctx, s.missionKey(id))
}

func (s *Server) missionKey(id string) string {
	return s.runner.Keyer.PlanKey(id, cache.PlanKeyOpts{Source: "store"})
}

// =============================================================================
// Helpers
// =============================================================================

func decodePlan(r *http.Request) (plan.Plan, error) {
	var p plan.Plan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return plan.Plan{}, err
	}
	if err := validatePlanInput(p); err != nil {
		return plan.Plan{}, err
	}
	return p, nil
}

// validatePlanInput rejects plans whose name or step ids could not be stored
// or rendered safely. Structural findings (dangling references, duplicates)
// stay advisory and are reported through [plan.Plan.Validate] instead.
func validatePlanInput(p plan.Plan) error {
	if p.Name != "" {
		if err := errors.ValidateMissionName(p.Name); err != nil {
			return err
		}
	}
	for _, s := range p.Steps {
		if s.ID == "" {
			continue // advisory finding
		}
		if err := errors.ValidateStepID(s.ID); err != nil {
			return err
		}
	}
	return nil
}

// planErrorCode picks the error code for a rejected plan body: the
// validation error's own code when it carries one, INVALID_PLAN otherwise.
func planErrorCode(err error) errors.Code {
	if c := errors.GetCode(err); c != "" {
		return c
	}
	return errors.ErrCodeInvalidPlan
}

func contentTypeFor(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/json"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code errors.Code, err error) {
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// writeStoreError maps store sentinel errors onto HTTP statuses.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		s.writeError(w, r, http.StatusNotFound, errors.ErrCodeMissionNotFound, err)
	case stderrors.Is(err, store.ErrExists):
		s.writeError(w, r, http.StatusConflict, errors.ErrCodeMissionExists, err)
	default:
		s.writeError(w, r, http.StatusInternalServerError, errors.ErrCodeStore, err)
	}
}
