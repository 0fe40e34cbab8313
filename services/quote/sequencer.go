package quote

import "quotely/models"

// BuildSteps derives the wizard step list from the resolved selection:
// service selection first, one config step per selected configurable service
// in selection order, summary last. The list is recomputed from the selection
// on every read; it is never stored.
func BuildSteps(selected []models.ServiceDefinition) []models.Step {
	steps := []models.Step{{Kind: models.StepServiceSelection}}
	for _, def := range selected {
		if def.Configurable {
			steps = append(steps, models.Step{Kind: models.StepServiceConfig, ServiceID: def.ID})
		}
	}
	steps = append(steps, models.Step{Kind: models.StepSummary})
	return steps
}

// stepIndex returns the 1-based index of the step with the given identity,
// or 0 if it is no longer present.
func stepIndex(steps []models.Step, target models.Step) int {
	for i, s := range steps {
		if s.Kind == target.Kind && s.ServiceID == target.ServiceID {
			return i + 1
		}
	}
	return 0
}

// advanceStep moves the cursor forward by one.
func advanceStep(current, total int) (int, error) {
	if current >= total {
		return current, StateError{Op: "advance", Reason: "already at the terminal step"}
	}
	return current + 1, nil
}

// retreatStep moves the cursor back by one.
func retreatStep(current int) (int, error) {
	if current <= 1 {
		return current, StateError{Op: "retreat", Reason: "already at the first step"}
	}
	return current - 1, nil
}

// jumpStep moves the cursor to an arbitrary step already reached. Jumping
// ahead of the furthest step visited in this session is rejected.
func jumpStep(target, furthest, total int) (int, error) {
	if target < 1 || target > total {
		return 0, StateError{Op: "goTo", Reason: "step out of range"}
	}
	if target > furthest {
		return 0, StateError{Op: "goTo", Reason: "cannot skip ahead of the furthest step reached"}
	}
	return target, nil
}

// reconcileStep recomputes the cursor after a selection change. If the
// previously active step still exists its identity wins over its old numeric
// index; if it was removed, the cursor clamps to the new terminal step.
func reconcileStep(session *models.QuoteSession, oldSteps, newSteps []models.Step) {
	total := len(newSteps)

	if session.CurrentStep >= 1 && session.CurrentStep <= len(oldSteps) {
		active := oldSteps[session.CurrentStep-1]
		if idx := stepIndex(newSteps, active); idx > 0 {
			session.CurrentStep = idx
		} else {
			session.CurrentStep = total
		}
	} else if session.CurrentStep > total {
		session.CurrentStep = total
	}

	if session.FurthestStep > total {
		session.FurthestStep = total
	}
	if session.FurthestStep < session.CurrentStep {
		session.FurthestStep = session.CurrentStep
	}
}
