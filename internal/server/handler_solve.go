package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/me/takt/internal/dataset"
	"github.com/me/takt/internal/schedule"
	"github.com/me/takt/internal/scripthx"
	"github.com/me/takt/pkg/model"
)

// solveRequest is the POST /api/v1/solve body. Instance is the raw
// document; Format selects its parser ("text" by default).
type solveRequest struct {
	Name      string `json:"name"`
	Heuristic string `json:"heuristic"`
	Format    string `json:"format"`
	Instance  string `json:"instance"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid JSON body", model.FieldError{Message: err.Error()}))
		return
	}
	if req.Instance == "" {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing instance", model.FieldError{Field: "instance", Message: "instance document is required"}))
		return
	}

	var (
		inst *model.Instance
		err  error
	)
	switch req.Format {
	case "", "text":
		inst, err = dataset.ParseText([]byte(req.Instance))
	case "yaml":
		inst, err = dataset.ParseYAML([]byte(req.Instance))
	default:
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("unknown format", model.FieldError{Field: "format", Message: "want text or yaml"}))
		return
	}
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid instance", model.FieldError{Field: "instance", Message: err.Error()}))
		return
	}

	heuristic, check, err := scripthx.Resolve(req.Heuristic)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid heuristic", model.FieldError{Field: "heuristic", Message: err.Error()}))
		return
	}

	res, err := schedule.Solve(inst, heuristic, s.logger)
	if err != nil {
		// Parsing already validated the instance, so this is unexpected.
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err))
		return
	}
	if err := check(); err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("heuristic failed", model.FieldError{Field: "heuristic", Message: err.Error()}))
		return
	}

	name := req.Heuristic
	if name == "" {
		name = "lpt"
	}
	run := &model.Run{
		ID:        runID(),
		Name:      req.Name,
		Heuristic: name,
		Machines:  inst.Machines,
		Jobs:      len(inst.Jobs),
		Makespan:  res.Makespan,
		Instance:  dataset.EncodeText(inst),
		Starts:    res.Starts,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateRun(r.Context(), run); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err))
		return
	}

	s.logger.Info("solved", "run", run.ID, "makespan", run.Makespan,
		"jobs", run.Jobs, "machines", run.Machines, "heuristic", run.Heuristic)
	respondCreated(w, reqID, run)
}
