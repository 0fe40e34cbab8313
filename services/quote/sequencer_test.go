package quote

import (
	"testing"

	"quotely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStepsCounts(t *testing.T) {
	byID := testCatalog(t)

	cases := []struct {
		name     string
		selected []string
		want     int
	}{
		{"empty selection", nil, 2},
		{"one non-configurable", []string{"social-media"}, 2},
		{"two non-configurable", []string{"social-media", "seo"}, 2},
		{"one configurable", []string{"website"}, 3},
		{"mixed", []string{"social-media", "website", "app"}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := selectAll(byID, tc.selected...)
			steps := BuildSteps(resolve(byID, state))

			// totalSteps = 1 + configurable selected + 1.
			assert.Len(t, steps, tc.want)
			assert.Equal(t, models.StepServiceSelection, steps[0].Kind)
			assert.Equal(t, models.StepSummary, steps[len(steps)-1].Kind)
		})
	}
}

func TestBuildStepsFollowsSelectionOrder(t *testing.T) {
	byID := testCatalog(t)
	state := selectAll(byID, "app", "website")
	steps := BuildSteps(resolve(byID, state))

	require.Len(t, steps, 4)
	assert.Equal(t, "app", steps[1].ServiceID)
	assert.Equal(t, "website", steps[2].ServiceID)
}

func TestAdvanceAndRetreatBounds(t *testing.T) {
	next, err := advanceStep(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	_, err = advanceStep(3, 3)
	assert.True(t, IsStateError(err), "advancing past the terminal step must be rejected")

	next, err = retreatStep(2)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	_, err = retreatStep(1)
	assert.True(t, IsStateError(err), "retreating before the first step must be rejected")
}

func TestJumpStepBounds(t *testing.T) {
	next, err := jumpStep(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	// Cannot skip ahead of the furthest step reached.
	_, err = jumpStep(4, 3, 4)
	assert.True(t, IsStateError(err))

	_, err = jumpStep(0, 3, 4)
	assert.True(t, IsStateError(err))

	_, err = jumpStep(5, 5, 4)
	assert.True(t, IsStateError(err))
}

func TestReconcileStepPreservesIdentity(t *testing.T) {
	byID := testCatalog(t)

	// Active on website's config step while app is also selected.
	state := selectAll(byID, "app", "website")
	oldSteps := BuildSteps(resolve(byID, state))
	session := &models.QuoteSession{CurrentStep: 3, FurthestStep: 4}

	// Removing app shifts website's config step from index 3 to 2; the
	// active step follows its identity, not its numeric index.
	state = ToggleService(byID["app"], state)
	newSteps := BuildSteps(resolve(byID, state))
	reconcileStep(session, oldSteps, newSteps)

	assert.Equal(t, 2, session.CurrentStep)
	assert.Equal(t, 3, session.FurthestStep)
}

func TestReconcileStepClampsWhenActiveStepRemoved(t *testing.T) {
	byID := testCatalog(t)

	state := selectAll(byID, "website")
	oldSteps := BuildSteps(resolve(byID, state))
	session := &models.QuoteSession{CurrentStep: 2, FurthestStep: 2}

	// Deselecting the service whose config step is active clamps the cursor
	// to the new terminal step.
	state = ToggleService(byID["website"], state)
	newSteps := BuildSteps(resolve(byID, state))
	reconcileStep(session, oldSteps, newSteps)

	assert.Equal(t, 2, session.CurrentStep)
	assert.Equal(t, len(newSteps), session.CurrentStep)
}

func TestReconcileStepSummaryIdentitySurvives(t *testing.T) {
	byID := testCatalog(t)

	state := selectAll(byID, "website")
	oldSteps := BuildSteps(resolve(byID, state))
	session := &models.QuoteSession{CurrentStep: 3, FurthestStep: 3}

	// On summary (index 3 of 3); deselecting website shrinks the wizard to
	// two steps and the summary keeps the cursor.
	state = ToggleService(byID["website"], state)
	newSteps := BuildSteps(resolve(byID, state))
	reconcileStep(session, oldSteps, newSteps)

	assert.Equal(t, 2, session.CurrentStep)
	assert.Equal(t, models.StepSummary, newSteps[session.CurrentStep-1].Kind)
	assert.Equal(t, 2, session.FurthestStep)
}
