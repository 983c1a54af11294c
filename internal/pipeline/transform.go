package pipeline

import (
	"context"
	"log/slog"

	"github.com/naruebaet/thai-plate-prophecy/internal/domain"
	"github.com/naruebaet/thai-plate-prophecy/internal/observability"
)

// AdviceTransformer implements Transformer by resolving each request against
// a shared Prophet.
type AdviceTransformer struct {
	prophet *domain.Prophet
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates an AdviceTransformer.
func NewTransformer(prophet *domain.Prophet, logger *slog.Logger, metrics *observability.Metrics) *AdviceTransformer {
	return &AdviceTransformer{
		prophet: prophet,
		logger:  logger,
		metrics: metrics,
	}
}

// Transform decodes a request, answers it and serializes the response.
// Calculation failures are part of the response; only undecodable messages
// return an error.
func (t *AdviceTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	req, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	resp := domain.Resolve(t.prophet, req)
	outcome := resp.Outcome()
	t.metrics.RecordAdvice(operationLabel(resp.Kind), outcome)
	if resp.Error != nil {
		t.logger.Debug("advice request rejected",
			"id", resp.ID, "kind", resp.Kind, "outcome", outcome, "message", resp.Error.Message)
	}

	return domain.SerializeAdviceResponse(resp)
}

// operationLabel bounds the metric label to the known request kinds; the
// kind comes straight from the message.
func operationLabel(kind string) string {
	if domain.IsRequestKind(kind) {
		return kind
	}
	return "invalid"
}
