package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/naruebaet/thai-plate-prophecy/internal/domain"
)

func (s *Server) handlePlate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.resolve(w, r, domain.AdviceRequest{
		Kind:       domain.RequestPlate,
		FirstPart:  q.Get("first"),
		SecondPart: q.Get("second"),
	})
}

func (s *Server) handleDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.resolve(w, r, domain.AdviceRequest{
		Kind:  domain.RequestDate,
		Day:   q.Get("day"),
		Month: q.Get("month"),
		Year:  q.Get("year"),
	})
}

func (s *Server) handleWeekday(w http.ResponseWriter, r *http.Request) {
	day, err := domain.ParseWeekDay(chi.URLParam(r, "day"))
	if err != nil {
		s.metrics.RecordAdvice(domain.RequestWeekday, "invalid_request")
		writeError(w, r, http.StatusBadRequest, "invalid_request", "weekday must be a number from 0 to 7")
		return
	}
	n := int(day)
	s.resolve(w, r, domain.AdviceRequest{Kind: domain.RequestWeekday, WeekDay: &n})
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	s.resolve(w, r, domain.AdviceRequest{Kind: domain.RequestToday})
}

// resolve answers req and writes either the calculation result or the error
// envelope.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request, req domain.AdviceRequest) {
	req.ID = middleware.GetReqID(r.Context())
	resp := domain.Resolve(s.prophet, req)
	s.metrics.RecordAdvice(resp.Kind, resp.Outcome())

	switch {
	case resp.Error != nil:
		status := statusForKind(resp.Error.Kind)
		if status >= http.StatusInternalServerError {
			s.logger.Error("advice failed", "request_id", resp.ID, "kind", resp.Kind, "error", resp.Error.Message)
		}
		writeError(w, r, status, resp.Error.Kind, resp.Error.Message)
	case resp.Plate != nil:
		writeJSON(w, http.StatusOK, resp.Plate)
	default:
		writeJSON(w, http.StatusOK, resp.Advice)
	}
}
