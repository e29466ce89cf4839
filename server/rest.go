package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// generateFeedbackRequest is the body of POST /feedback/generate
type generateFeedbackRequest struct {
	UserID    string                   `json:"user_id"`
	SessionID string                   `json:"session_id"`
	Telemetry domain.TelemetrySnapshot `json:"telemetry"`
}

// generateFeedbackHandler runs the decision cascade for one telemetry snapshot
func (s *Server) generateFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req generateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.SessionID == "" {
		renderError(w, r, fmt.Errorf("user_id and session_id are required"), http.StatusBadRequest)
		return
	}

	event, err := s.engine.GenerateFeedback(r.Context(), req.UserID, req.SessionID, req.Telemetry)
	if err != nil {
		log.Printf("[ERROR] generate feedback failed: %v", err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	// nil event is the common outcome: throttled or nothing worth signaling
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feedback": event})
}

// ackFeedbackRequest is the body of POST /feedback/{id}/ack
type ackFeedbackRequest struct {
	ReceivedAt time.Time `json:"received_at"`
}

// ackFeedbackHandler marks a delivered feedback event as received by the client
func (s *Server) ackFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		renderError(w, r, fmt.Errorf("feedback id is required"), http.StatusBadRequest)
		return
	}

	var req ackFeedbackRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
			return
		}
	}
	if req.ReceivedAt.IsZero() {
		req.ReceivedAt = time.Now().UTC()
	}

	if err := s.engine.AcknowledgeFeedback(r.Context(), id, req.ReceivedAt); err != nil {
		log.Printf("[ERROR] acknowledge feedback failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "received", "id": id})
}

// getFeedbackHandler returns a single feedback event by id
func (s *Server) getFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	event, err := s.store.GetEvent(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] get feedback event failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if event == nil {
		renderError(w, r, fmt.Errorf("feedback %s not found", id), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, event)
}

// getSettingsHandler returns user settings, creating defaults on first access
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")

	settings, err := s.store.GetUserSettings(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] get settings failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, settings)
}

// updateSettingsHandler applies a partial settings update
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")

	var patch domain.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if patch.HapticStrength != nil && (*patch.HapticStrength < 1 || *patch.HapticStrength > 10) {
		renderError(w, r, fmt.Errorf("haptic_strength must be between 1 and 10"), http.StatusBadRequest)
		return
	}
	if patch.MinimumIntervalSeconds != nil && *patch.MinimumIntervalSeconds < 1 {
		renderError(w, r, fmt.Errorf("minimum_interval_seconds must be at least 1"), http.StatusBadRequest)
		return
	}

	settings, err := s.store.UpdateUserSettings(r.Context(), userID, patch)
	if err != nil {
		log.Printf("[ERROR] update settings failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, settings)
}

// listPatternsHandler returns the haptic pattern catalog, optionally filtered
// by ?category=
func (s *Server) listPatternsHandler(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	patterns, err := s.store.ListPatterns(r.Context(), category)
	if err != nil {
		log.Printf("[ERROR] list patterns failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"patterns": patterns, "count": len(patterns)})
}

// getPatternHandler returns a single pattern by id
func (s *Server) getPatternHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	pattern, err := s.store.GetPattern(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] get pattern failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if pattern == nil {
		renderError(w, r, fmt.Errorf("pattern %s not found", id), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, pattern)
}

// historyHandler returns per-session feedback history, newest first, with
// paging via ?limit= and ?offset=
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session")

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 || val > 100 {
			renderError(w, r, fmt.Errorf("limit must be between 1 and 100"), http.StatusBadRequest)
			return
		}
		limit = val
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		val, err := strconv.Atoi(offsetStr)
		if err != nil || val < 0 {
			renderError(w, r, fmt.Errorf("offset must be non-negative"), http.StatusBadRequest)
			return
		}
		offset = val
	}

	events, err := s.store.ListEvents(r.Context(), sessionID, limit, offset)
	if err != nil {
		log.Printf("[ERROR] list history failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	total, err := s.store.CountEvents(r.Context(), sessionID)
	if err != nil {
		log.Printf("[ERROR] count history failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"events":     events,
		"total":      total,
		"limit":      limit,
		"offset":     offset,
	})
}
