package quote

import (
	"context"
	"errors"
	"time"

	catalogRepo "quotely/database/repository/catalog"
	"quotely/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// resolveService maps an unknown catalog id to a validation error.
func (s *DefaultQuoteSessionService) resolveService(ctx context.Context, serviceID string) (models.ServiceDefinition, error) {
	def, err := s.Catalog.GetService(ctx, serviceID)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return models.ServiceDefinition{}, ValidationError{Kind: "service", ID: serviceID}
	}
	return def, err
}

// resolveSelected returns the definitions of the selected services, in
// selection order.
func (s *DefaultQuoteSessionService) resolveSelected(ctx context.Context, state models.SelectionState) ([]models.ServiceDefinition, error) {
	defs := make([]models.ServiceDefinition, 0, len(state.SelectedServiceIDs))
	for _, id := range state.SelectedServiceIDs {
		def, err := s.resolveService(ctx, id)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (s *DefaultQuoteSessionService) view(ctx context.Context, session *models.QuoteSession) (*SessionView, error) {
	selected, err := s.resolveSelected(ctx, session.Selection)
	if err != nil {
		return nil, err
	}
	steps := BuildSteps(selected)
	return &SessionView{
		SessionID:   session.SessionID,
		Steps:       steps,
		CurrentStep: session.CurrentStep,
		TotalSteps:  len(steps),
		Selection:   session.Selection,
		Quote:       Compute(selected, session.Selection),
	}, nil
}

// CreateSession starts a wizard session with an empty selection.
func (s *DefaultQuoteSessionService) CreateSession(ctx context.Context) (*SessionView, error) {
	session := &models.QuoteSession{
		SessionID:    uuid.New().String(),
		Selection:    models.NewSelectionState(),
		CurrentStep:  1,
		FurthestStep: 1,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// GetSession returns the current view of an existing session.
func (s *DefaultQuoteSessionService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// ToggleService flips a service in or out of the selection and reconciles
// the step cursor against the recomputed step list.
func (s *DefaultQuoteSessionService) ToggleService(ctx context.Context, sessionID, serviceID string) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	def, err := s.resolveService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	oldSelected, err := s.resolveSelected(ctx, session.Selection)
	if err != nil {
		return nil, err
	}
	oldSteps := BuildSteps(oldSelected)

	session.Selection = ToggleService(def, session.Selection)

	newSelected, err := s.resolveSelected(ctx, session.Selection)
	if err != nil {
		return nil, err
	}
	reconcileStep(session, oldSteps, BuildSteps(newSelected))

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

type selectionOp func(def models.ServiceDefinition, state models.SelectionState, groupID, optionID string) (models.SelectionState, error)

func (s *DefaultQuoteSessionService) configure(ctx context.Context, sessionID, serviceID, groupID, optionID string, op selectionOp) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	def, err := s.resolveService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	next, err := op(def, session.Selection, groupID, optionID)
	if err != nil {
		return nil, err
	}
	session.Selection = next
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// SetSingleChoice replaces the active option of a single-select group.
func (s *DefaultQuoteSessionService) SetSingleChoice(ctx context.Context, sessionID, serviceID, groupID, optionID string) (*SessionView, error) {
	return s.configure(ctx, sessionID, serviceID, groupID, optionID, SetSingleChoice)
}

// ToggleMultiOption toggles membership in a multi-select group's active set.
func (s *DefaultQuoteSessionService) ToggleMultiOption(ctx context.Context, sessionID, serviceID, groupID, optionID string) (*SessionView, error) {
	return s.configure(ctx, sessionID, serviceID, groupID, optionID, ToggleMultiOption)
}

type cursorOp func(session *models.QuoteSession, total int) (int, error)

func (s *DefaultQuoteSessionService) moveCursor(ctx context.Context, sessionID string, op cursorOp) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	selected, err := s.resolveSelected(ctx, session.Selection)
	if err != nil {
		return nil, err
	}
	total := len(BuildSteps(selected))

	next, err := op(session, total)
	if err != nil {
		return nil, err
	}
	session.CurrentStep = next
	if next > session.FurthestStep {
		session.FurthestStep = next
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// Advance moves one step forward.
func (s *DefaultQuoteSessionService) Advance(ctx context.Context, sessionID string) (*SessionView, error) {
	return s.moveCursor(ctx, sessionID, func(session *models.QuoteSession, total int) (int, error) {
		return advanceStep(session.CurrentStep, total)
	})
}

// Retreat moves one step back.
func (s *DefaultQuoteSessionService) Retreat(ctx context.Context, sessionID string) (*SessionView, error) {
	return s.moveCursor(ctx, sessionID, func(session *models.QuoteSession, _ int) (int, error) {
		return retreatStep(session.CurrentStep)
	})
}

// GoTo jumps to a step already reached in this session.
func (s *DefaultQuoteSessionService) GoTo(ctx context.Context, sessionID string, step int) (*SessionView, error) {
	return s.moveCursor(ctx, sessionID, func(session *models.QuoteSession, total int) (int, error) {
		return jumpStep(step, session.FurthestStep, total)
	})
}

// Finalize snapshots the live computation and places it in the handoff
// slot, overwriting any prior pending quote. Slot failures never corrupt
// the wizard: they are logged and the quote is still returned.
func (s *DefaultQuoteSessionService) Finalize(ctx context.Context, sessionID string) (*models.Quote, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	selected, err := s.resolveSelected(ctx, session.Selection)
	if err != nil {
		return nil, err
	}

	q := Snapshot(Compute(selected, session.Selection))

	if err := s.Handoff.Put(ctx, q); err != nil {
		s.Logger.Warn("Failed to write pending quote, continuing without handoff",
			zap.String("quoteId", q.QuoteID), zap.Error(err))
		return &q, nil
	}

	if s.Followup != nil {
		if err := s.Followup.ScheduleExpiry(q.QuoteID, time.Now().Add(s.PendingTTL)); err != nil {
			s.Logger.Warn("Failed to schedule pending quote expiry",
				zap.String("quoteId", q.QuoteID), zap.Error(err))
		}
	}
	return &q, nil
}

// Cancel discards the session.
func (s *DefaultQuoteSessionService) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}
