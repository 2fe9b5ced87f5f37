package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/me/takt/internal/dataset"
	"github.com/me/takt/internal/render"
	"github.com/me/takt/pkg/model"
)

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := model.DefaultListOptions()
	if v := r.URL.Query().Get("limit"); v != "" {
		opts.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		opts.Offset, _ = strconv.Atoi(v)
	}
	opts.Heuristic = r.URL.Query().Get("heuristic")
	opts.Clamp()

	runs, total, err := s.store.ListRuns(r.Context(), opts)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err))
		return
	}
	if runs == nil {
		runs = []*model.Run{}
	}
	respondList(w, reqID, runs, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+len(runs) < total,
	})
}

// getRun fetches a run or writes the 404/500 response and returns nil.
func (s *Server) getRun(w http.ResponseWriter, r *http.Request, reqID string) *model.Run {
	id := chi.URLParam(r, "id")
	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err))
		return nil
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return nil
	}
	return run
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if run := s.getRun(w, r, reqID); run != nil {
		respondOK(w, reqID, run)
	}
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	err := s.store.DeleteRun(r.Context(), id)
	if apiErr, ok := err.(*model.APIError); ok && apiErr.Code == model.ErrNotFound {
		respondError(w, reqID, http.StatusNotFound, apiErr)
		return
	}
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err))
		return
	}
	respondOK(w, reqID, map[string]string{"deleted": id})
}

// handleRunChart renders the persisted run as a plain-text Gantt
// chart. Color is off unless ?color=always is given; ANSI sequences
// rarely make sense over HTTP.
func (s *Server) handleRunChart(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	run := s.getRun(w, r, reqID)
	if run == nil {
		return
	}

	inst, err := dataset.ParseText([]byte(run.Instance))
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err))
		return
	}
	color := render.Plain
	if r.URL.Query().Get("color") == "always" {
		color = render.ANSI
	}
	res := &model.Result{Makespan: run.Makespan, Starts: run.Starts}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(render.Chart(inst, res, color)))
}

func (s *Server) handleRunSummary(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	run := s.getRun(w, r, reqID)
	if run == nil {
		return
	}
	res := &model.Result{Makespan: run.Makespan, Starts: run.Starts}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(render.Summary(res)))
}
