package server

import (
	"net/http"
	"runtime"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Store     string `json:"store"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	storeStatus := "ready"
	if s.store == nil {
		storeStatus = "absent"
	}
	respondOK(w, reqID, healthResponse{
		Status:    "healthy",
		Version:   "0.1.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Store:     storeStatus,
	})
}

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "takt API",
		Version:     "v1",
		Description: "takt job-shop scheduler, greedy dispatch with pluggable heuristics",
		Endpoints: []endpointInfo{
			{"/api/v1/solve", []string{"POST"}, "Solve an instance and persist the run"},
			{"/api/v1/runs", []string{"GET"}, "List persisted runs"},
			{"/api/v1/runs/{id}", []string{"GET", "DELETE"}, "Single run detail with start times"},
			{"/api/v1/runs/{id}/chart", []string{"GET"}, "Plain-text Gantt chart of a run"},
			{"/api/v1/runs/{id}/summary", []string{"GET"}, "Makespan and start times, one job per line"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
