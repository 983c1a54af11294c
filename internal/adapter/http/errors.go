package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/naruebaet/thai-plate-prophecy/internal/domain"
)

// errorEnvelope is the JSON body of every non-2xx API response.
type errorEnvelope struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// statusForKind maps an error kind name to an HTTP status. Validation kinds
// are the caller's fault; a missing table entry is ours.
func statusForKind(kind string) int {
	switch kind {
	case domain.KindNoAdviceFound.String():
		return http.StatusNotFound
	case domain.KindDataIntegrity.String(), domain.KindUnknown.String():
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	writeJSON(w, status, errorEnvelope{
		Error:     kind,
		Message:   message,
		Status:    status,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // the client may have gone away
}
