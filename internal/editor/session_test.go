package editor_test

import (
	"errors"
	"testing"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/editor"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_States(t *testing.T) {
	testCases := []struct {
		name         string
		status       entities.OrderStatus
		wantState    editor.State
		wantEditable bool
	}{
		{"draft is editable", entities.StatusDraft, editor.StateReadyEditable, true},
		{"accepted is editable", entities.StatusAccepted, editor.StateReadyEditable, true},
		{"pending is read only", entities.StatusPending, editor.StateReadyReadOnly, false},
		{"delivered is read only", entities.StatusDelivered, editor.StateReadyReadOnly, false},
		{"cancelled is read only", entities.StatusCancelled, editor.StateReadyReadOnly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := testOrder()
			order.Status = tc.status

			s := editor.NewSession("sess-1", order, testCatalog())
			assert.Equal(t, tc.wantState, s.State())
			assert.Equal(t, tc.wantEditable, s.Editable())
		})
	}
}

func TestSession_ReadOnlyRejectsEdits(t *testing.T) {
	order := testOrder()
	order.Status = entities.StatusDelivered
	s := editor.NewSession("sess-1", order, testCatalog())

	assert.ErrorIs(t, s.SetQuantity("p-a", 1), entities.ErrOrderReadOnly)
	assert.ErrorIs(t, s.RemoveItem("p-a"), entities.ErrOrderReadOnly)
	assert.ErrorIs(t, s.BeginSave(), entities.ErrOrderReadOnly)

	// state never changed
	assert.Equal(t, 5, s.Quantity("p-a"))
	assert.Equal(t, editor.StateReadyReadOnly, s.State())
}

func TestSession_SaveLifecycle(t *testing.T) {
	s := editor.NewSession("sess-1", testOrder(), testCatalog())
	require.NoError(t, s.SetQuantity("p-a", 3))

	require.NoError(t, s.BeginSave())
	assert.Equal(t, editor.StateSaveInFlight, s.State())

	// edits and a second save are refused while one is pending
	assert.ErrorIs(t, s.SetQuantity("p-a", 1), entities.ErrOrderReadOnly)
	assert.ErrorIs(t, s.BeginSave(), entities.ErrSaveInFlight)

	s.FinishSave(nil)
	assert.Equal(t, editor.StateSaveSucceeded, s.State())
	assert.True(t, s.Editable(), "editing resumes after a successful save")
	assert.Equal(t, 3, s.Quantity("p-a"))
}

func TestSession_SaveFailureKeepsEdits(t *testing.T) {
	s := editor.NewSession("sess-1", testOrder(), testCatalog())
	require.NoError(t, s.SetQuantity("p-a", 2))
	require.NoError(t, s.RemoveItem("p-b"))

	require.NoError(t, s.BeginSave())
	s.FinishSave(errors.New("upstream down"))

	assert.Equal(t, editor.StateSaveFailed, s.State())
	assert.Equal(t, 2, s.Quantity("p-a"))
	assert.Equal(t, 0, s.Quantity("p-b"))

	// the user may retry
	require.NoError(t, s.BeginSave())
	s.FinishSave(nil)
	assert.Equal(t, editor.StateSaveSucceeded, s.State())
}

func TestSession_OrderCarriesWorkingLines(t *testing.T) {
	s := editor.NewSession("sess-1", testOrder(), testCatalog())
	require.NoError(t, s.SetQuantity("p-a", 1))
	require.NoError(t, s.RemoveItem("p-b"))

	got := s.Order()
	assert.Equal(t, "ord-1", got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p-a", got.Items[0].ProductID)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.InDelta(t, 10.0, got.Total(), 1e-9)
	assert.InDelta(t, 10.0, s.Total(), 1e-9)
	assert.Equal(t, 1, s.Units())
}
