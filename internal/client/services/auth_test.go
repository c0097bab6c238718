package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partsquest/cli/internal/client/access"
	"github.com/partsquest/cli/internal/client/api"
	"github.com/partsquest/cli/internal/client/models"
	"github.com/partsquest/cli/internal/client/state"
	"github.com/partsquest/cli/internal/logging"
)

// ------------ fakes ------------

type fakeClient struct {
	loginRes *api.AuthResult
	loginErr error

	registerReq api.RegisterRequest
	registerRes *api.AuthResult
	registerErr error

	profileCalls int
	profileRes   *models.User
	profileErr   error

	updateRes *models.User
	updateErr error

	listCalls int
	listRes   []models.PartRequest
	listErr   error

	createCalls int
	createReq   models.NewPartRequest
	createRes   *models.PartRequest
	createErr   error

	checkoutPriceID string
	checkoutURL     string
	checkoutErr     error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	f.registerReq = req
	return f.registerRes, f.registerErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	f.profileCalls++
	return f.profileRes, f.profileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req api.ProfileUpdate) (*models.User, error) {
	return f.updateRes, f.updateErr
}

func (f *fakeClient) ListPartRequests(ctx context.Context) ([]models.PartRequest, error) {
	f.listCalls++
	return f.listRes, f.listErr
}

func (f *fakeClient) CreatePartRequest(ctx context.Context, req models.NewPartRequest) (*models.PartRequest, error) {
	f.createCalls++
	f.createReq = req
	return f.createRes, f.createErr
}

func (f *fakeClient) CreateCheckoutSession(ctx context.Context, priceID string) (string, error) {
	f.checkoutPriceID = priceID
	return f.checkoutURL, f.checkoutErr
}

type memStore struct {
	token      string
	clearCalls int
}

func (m *memStore) Token() (string, bool)   { return m.token, m.token != "" }
func (m *memStore) SetToken(t string) error { m.token = t; return nil }
func (m *memStore) Clear() error            { m.token = ""; m.clearCalls++; return nil }

func testLogger() logging.Logger { return logging.NewTextLogger(io.Discard) }

// ------------ tests ------------

func TestLoginActiveGoesToDashboard(t *testing.T) {
	fc := &fakeClient{loginRes: &api.AuthResult{
		Token: "tok-1",
		User:  models.User{Email: "a@b.c", SubscriptionStatus: models.StatusActive},
	}}
	st := state.New()
	store := &memStore{}
	auth := NewAuthService(fc, store, st, testLogger())

	view, err := auth.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, access.ViewDashboard, view)
	require.Equal(t, "tok-1", store.token)
	require.Equal(t, models.StatusActive, st.Status())
}

func TestLoginNonActiveGoesToPlanSelection(t *testing.T) {
	for _, status := range []models.SubscriptionStatus{models.StatusFree, models.StatusInactive, ""} {
		fc := &fakeClient{loginRes: &api.AuthResult{
			Token: "tok",
			User:  models.User{SubscriptionStatus: status},
		}}
		auth := NewAuthService(fc, &memStore{}, state.New(), testLogger())

		view, err := auth.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err)
		require.Equal(t, access.ViewSubscriptionSelection, view, "status %q", status)
	}
}

func TestLoginFailureLeavesStateAlone(t *testing.T) {
	fc := &fakeClient{loginErr: api.ErrUnauthorized}
	st := state.New()
	store := &memStore{}
	auth := NewAuthService(fc, store, st, testLogger())

	_, err := auth.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Empty(t, store.token)
	require.False(t, st.HasProfile())
}

func TestRegisterAlwaysSelectsPlanAndSkipsProfileFetch(t *testing.T) {
	// The registration response claims an active subscription; plan
	// selection still wins, and the profile endpoint is never touched.
	fc := &fakeClient{registerRes: &api.AuthResult{
		Token: "tok-r",
		User:  models.User{Email: "new@b.c", SubscriptionStatus: models.StatusActive},
	}}
	st := state.New()
	auth := NewAuthService(fc, &memStore{}, st, testLogger())

	view, err := auth.Register(context.Background(), api.RegisterRequest{Email: "new@b.c", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, access.ViewSubscriptionSelection, view)
	require.Zero(t, fc.profileCalls)
	require.Equal(t, "new@b.c", st.Profile.Email)
}

func TestReconcileWithoutTokenMakesNoCall(t *testing.T) {
	fc := &fakeClient{}
	auth := NewAuthService(fc, &memStore{}, state.New(), testLogger())

	view, err := auth.Reconcile(context.Background())
	require.NoError(t, err)
	require.Equal(t, access.ViewLanding, view)
	require.Zero(t, fc.profileCalls)
	require.Zero(t, fc.listCalls)
}

func TestReconcileFetchFailureClearsSession(t *testing.T) {
	fc := &fakeClient{profileErr: api.ErrUnauthorized}
	st := state.New()
	st.Profile = &models.User{Email: "stale@b.c"}
	st.SetRequests([]models.PartRequest{{ID: 1}})
	store := &memStore{token: "stale-tok"}
	auth := NewAuthService(fc, store, st, testLogger())

	view, err := auth.Reconcile(context.Background())
	require.NoError(t, err)
	require.Equal(t, access.ViewLogin, view)
	// Profile and cache go together, along with the token.
	require.Nil(t, st.Profile)
	require.Nil(t, st.Requests)
	require.Empty(t, store.token)
}

func TestReconcileEntitledStatuses(t *testing.T) {
	tests := []struct {
		status models.SubscriptionStatus
		want   access.View
	}{
		{models.StatusActive, access.ViewDashboard},
		{models.StatusFree, access.ViewDashboard},
		{models.StatusInactive, access.ViewSubscriptionSelection},
		{"past_due", access.ViewSubscriptionSelection},
	}
	for _, tc := range tests {
		fc := &fakeClient{profileRes: &models.User{SubscriptionStatus: tc.status}}
		st := state.New()
		auth := NewAuthService(fc, &memStore{token: "tok"}, st, testLogger())

		view, err := auth.Reconcile(context.Background())
		require.NoError(t, err)
		require.Equal(t, tc.want, view, "status %q", tc.status)
		require.Equal(t, 1, fc.profileCalls)
	}
}

func TestLogoutClearsEverythingTogether(t *testing.T) {
	st := state.New()
	st.Profile = &models.User{Email: "a@b.c"}
	st.SetRequests([]models.PartRequest{{ID: 1}, {ID: 2}})
	store := &memStore{token: "tok"}
	auth := NewAuthService(&fakeClient{}, store, st, testLogger())

	require.NoError(t, auth.Logout())
	require.Empty(t, store.token)
	require.Nil(t, st.Profile)
	require.Nil(t, st.Requests)
	require.Equal(t, 1, store.clearCalls)
}

func TestUpdateProfileReplacesCachedProfile(t *testing.T) {
	fc := &fakeClient{updateRes: &models.User{FirstName: "Ada", SubscriptionStatus: models.StatusActive}}
	st := state.New()
	st.Profile = &models.User{FirstName: "Old", SubscriptionStatus: models.StatusActive}
	auth := NewAuthService(fc, &memStore{token: "tok"}, st, testLogger())

	require.NoError(t, auth.UpdateProfile(context.Background(), api.ProfileUpdate{FirstName: "Ada"}))
	require.Equal(t, "Ada", st.Profile.FirstName)
}

func TestUpdateProfileFailureKeepsOldProfile(t *testing.T) {
	fc := &fakeClient{updateErr: errors.New("boom")}
	st := state.New()
	st.Profile = &models.User{FirstName: "Old"}
	auth := NewAuthService(fc, &memStore{token: "tok"}, st, testLogger())

	require.Error(t, auth.UpdateProfile(context.Background(), api.ProfileUpdate{FirstName: "Ada"}))
	require.Equal(t, "Old", st.Profile.FirstName)
}
