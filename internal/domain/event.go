package domain

import (
	"context"
	"time"
)

// Request kinds accepted on the source topic and the HTTP API.
const (
	RequestPlate   = "plate"
	RequestDate    = "date"
	RequestWeekday = "weekday"
	RequestToday   = "today"
)

// IsRequestKind reports whether kind is one of the request kinds above.
func IsRequestKind(kind string) bool {
	switch kind {
	case RequestPlate, RequestDate, RequestWeekday, RequestToday:
		return true
	}
	return false
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// AdviceRequest is one advice query. Only the fields for its Kind are read.
type AdviceRequest struct {
	ID         string `json:"id,omitempty"`
	Kind       string `json:"kind"`
	FirstPart  string `json:"first_part,omitempty"`
	SecondPart string `json:"second_part,omitempty"`
	Day        string `json:"day,omitempty"`
	Month      string `json:"month,omitempty"`
	Year       string `json:"year,omitempty"`
	WeekDay    *int   `json:"weekday,omitempty"`
}

// ErrorBody is the serialized form of a failed request.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// AdviceResponse is the answer to an AdviceRequest. Exactly one of Plate,
// Advice and Error is set.
type AdviceResponse struct {
	ID          string                  `json:"id"`
	Kind        string                  `json:"kind"`
	Plate       *PlateCalculationResult `json:"plate,omitempty"`
	Advice      *LuckyNumberAdvice      `json:"advice,omitempty"`
	Error       *ErrorBody              `json:"error,omitempty"`
	ProcessedAt time.Time               `json:"processed_at"`
}

// Outcome is "ok" for a successful response, otherwise the error kind.
func (r AdviceResponse) Outcome() string {
	if r.Error != nil {
		return r.Error.Kind
	}
	return "ok"
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
