package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partsquest/cli/internal/client/api"
	"github.com/partsquest/cli/internal/client/models"
	"github.com/partsquest/cli/internal/client/state"
)

func TestCreateInvalidQuantityNeverHitsNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewRequestService(fc, state.New(), testLogger())

	err := svc.Create(context.Background(), models.NewPartRequest{PartNumber: "X1", Quantity: 0})
	require.ErrorIs(t, err, models.ErrInvalidRequest)
	require.Zero(t, fc.createCalls)
	require.Zero(t, fc.listCalls)
}

func TestCreateTriggersExactlyOneRefresh(t *testing.T) {
	fc := &fakeClient{
		createRes: &models.PartRequest{ID: 11, PartNumber: "X1", Quantity: 3, Urgency: models.UrgencyHigh, Status: models.StatusPending},
		listRes: []models.PartRequest{
			{ID: 11, PartNumber: "X1", Quantity: 3, Urgency: models.UrgencyHigh, Status: models.StatusPending},
		},
	}
	st := state.New()
	svc := NewRequestService(fc, st, testLogger())

	err := svc.Create(context.Background(), models.NewPartRequest{PartNumber: "X1", Quantity: 3, Urgency: models.UrgencyHigh})
	require.NoError(t, err)
	require.Equal(t, 1, fc.createCalls)
	require.Equal(t, 1, fc.listCalls)

	// The new item arrives via the refresh, not local insertion.
	require.Len(t, svc.Cached(), 1)
	require.Equal(t, int64(11), svc.Cached()[0].ID)
}

func TestCreateSubscriptionGateLeavesCacheUntouched(t *testing.T) {
	fc := &fakeClient{createErr: api.ErrSubscriptionRequired}
	st := state.New()
	st.SetRequests([]models.PartRequest{{ID: 1, PartNumber: "OLD"}})
	svc := NewRequestService(fc, st, testLogger())

	err := svc.Create(context.Background(), models.NewPartRequest{PartNumber: "X1", Quantity: 1})
	require.ErrorIs(t, err, api.ErrSubscriptionRequired)
	require.Zero(t, fc.listCalls)
	require.Len(t, svc.Cached(), 1)
	require.Equal(t, "OLD", svc.Cached()[0].PartNumber)
}

func TestRefreshGateLeavesCacheUntouched(t *testing.T) {
	fc := &fakeClient{listErr: api.ErrSubscriptionRequired}
	st := state.New()
	st.SetRequests([]models.PartRequest{{ID: 1}})
	svc := NewRequestService(fc, st, testLogger())

	_, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, api.ErrSubscriptionRequired)
	require.Len(t, svc.Cached(), 1)
}

func TestRefreshReplacesCacheInServerOrder(t *testing.T) {
	fc := &fakeClient{listRes: []models.PartRequest{{ID: 9}, {ID: 2}, {ID: 5}}}
	st := state.New()
	st.SetRequests([]models.PartRequest{{ID: 1}})
	svc := NewRequestService(fc, st, testLogger())

	reqs, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{9, 2, 5}, []int64{reqs[0].ID, reqs[1].ID, reqs[2].ID})
	require.Len(t, svc.Cached(), 3)
}

func TestCreateRefreshFailureStillReportsGate(t *testing.T) {
	// Creation succeeded but the follow-up listing hit the gate; the error
	// must still be recognizable as the subscription signal.
	fc := &fakeClient{
		createRes: &models.PartRequest{ID: 3},
		listErr:   api.ErrSubscriptionRequired,
	}
	st := state.New()
	st.SetRequests([]models.PartRequest{{ID: 1}})
	svc := NewRequestService(fc, st, testLogger())

	err := svc.Create(context.Background(), models.NewPartRequest{PartNumber: "X1", Quantity: 1})
	require.ErrorIs(t, err, api.ErrSubscriptionRequired)
	require.Len(t, svc.Cached(), 1)
}
