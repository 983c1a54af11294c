package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/width"
)

// invalidRequestKind labels requests that cannot be dispatched at all, as
// opposed to requests rejected by a calculation.
const invalidRequestKind = "invalid_request"

// ParseRawEvent deserializes a RawEvent's value into an AdviceRequest. The
// message key stands in for a missing request ID.
func ParseRawEvent(raw RawEvent) (AdviceRequest, error) {
	var req AdviceRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return AdviceRequest{}, fmt.Errorf("parse advice request: %w", err)
	}
	if req.ID == "" && len(raw.Key) > 0 {
		req.ID = string(raw.Key)
	}
	return req, nil
}

// Normalize trims surrounding space and folds full-width digits and letters
// to their narrow forms, as typed on some phone keyboards. Validation of the
// result stays strict.
func (r AdviceRequest) Normalize() AdviceRequest {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.FirstPart = normalizeField(r.FirstPart)
	r.SecondPart = normalizeField(r.SecondPart)
	r.Day = normalizeField(r.Day)
	r.Month = normalizeField(r.Month)
	r.Year = normalizeField(r.Year)
	return r
}

func normalizeField(s string) string {
	return width.Fold.String(strings.TrimSpace(s))
}

// Resolve answers req with p. Calculation failures are reported in the
// response body rather than returned, so every request gets an answer.
func Resolve(p *Prophet, req AdviceRequest) AdviceResponse {
	req = req.Normalize()

	resp := AdviceResponse{
		ID:          req.ID,
		Kind:        req.Kind,
		ProcessedAt: clock.Now().UTC(),
	}
	if resp.ID == "" {
		resp.ID = ulid.Make().String()
	}

	switch req.Kind {
	case RequestPlate:
		result, err := p.AdviceByPlateData(req.FirstPart, req.SecondPart)
		if err != nil {
			resp.Error = errorBody(err)
			return resp
		}
		resp.Plate = &result
	case RequestDate:
		advice, err := p.AdviceByDMY(req.Day, req.Month, req.Year)
		resp.setAdvice(advice, err)
	case RequestWeekday:
		if req.WeekDay == nil {
			resp.Error = &ErrorBody{Kind: invalidRequestKind, Message: "weekday is required"}
			return resp
		}
		advice, err := p.AdviceByWeekDay(WeekDay(*req.WeekDay))
		resp.setAdvice(advice, err)
	case RequestToday:
		advice, err := p.AdviceForToday()
		resp.setAdvice(advice, err)
	default:
		resp.Error = &ErrorBody{Kind: invalidRequestKind, Message: fmt.Sprintf("unknown request kind %q", req.Kind)}
	}
	return resp
}

func (r *AdviceResponse) setAdvice(advice LuckyNumberAdvice, err error) {
	if err != nil {
		r.Error = errorBody(err)
		return
	}
	r.Advice = &advice
}

func errorBody(err error) *ErrorBody {
	return &ErrorBody{Kind: KindOf(err).String(), Message: err.Error()}
}

// SerializeAdviceResponse marshals a response into an OutputEvent keyed by
// request ID.
func SerializeAdviceResponse(resp AdviceResponse) (OutputEvent, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize advice response: %w", err)
	}
	return OutputEvent{
		Key:   []byte(resp.ID),
		Value: data,
		Headers: map[string]string{
			"kind":         resp.Kind,
			"outcome":      resp.Outcome(),
			"processed_at": resp.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}

// ParseWeekDay converts a path or query value into a WeekDay.
func ParseWeekDay(s string) (WeekDay, error) {
	n, err := strconv.Atoi(strings.TrimSpace(width.Fold.String(s)))
	if err != nil {
		return 0, fmt.Errorf("parse weekday %q: %w", s, err)
	}
	return WeekDay(n), nil
}
