package intake

import (
	"context"

	"go.uber.org/zap"
)

// PendingQuote reads the handoff slot without consuming it. A read failure
// behaves exactly as if no quote was ever created.
func (s *DefaultIntakeService) PendingQuote(ctx context.Context) (*PendingSummary, error) {
	q, err := s.Handoff.Peek(ctx)
	if err != nil {
		s.Logger.Warn("Failed to read pending quote, proceeding without one", zap.Error(err))
		return nil, nil
	}
	if q == nil {
		return nil, nil
	}

	summary := &PendingSummary{
		Quote:    *q,
		Services: make([]ServiceSummaryLine, 0, len(q.Services)),
		Total:    q.Total,
		Prefill:  BuildPrefill(*q),
	}
	for _, sq := range q.Services {
		summary.Services = append(summary.Services, ServiceSummaryLine{
			ServiceName: sq.ServiceName,
			Subtotal:    sq.Subtotal,
		})
	}
	return summary, nil
}

// Complete clears the slot after the downstream flow finished successfully.
// A failed consume is logged and swallowed; storage trouble never turns a
// finished intake into a hard failure.
func (s *DefaultIntakeService) Complete(ctx context.Context) error {
	q, err := s.Handoff.Take(ctx)
	if err != nil {
		s.Logger.Warn("Failed to consume pending quote", zap.Error(err))
		return nil
	}
	if q != nil {
		s.Logger.Info("Pending quote consumed", zap.String("quoteId", q.QuoteID))
	}
	return nil
}
