package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partsquest/cli/internal/client/models"
)

func TestNextViewStartup(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want View
	}{
		{"no token", Input{Trigger: TriggerStartup}, ViewLanding},
		{"token but fetch failed", Input{Trigger: TriggerStartup, HasToken: true}, ViewLogin},
		{"active", Input{Trigger: TriggerStartup, HasToken: true, FetchOK: true, Status: models.StatusActive}, ViewDashboard},
		{"free", Input{Trigger: TriggerStartup, HasToken: true, FetchOK: true, Status: models.StatusFree}, ViewDashboard},
		{"inactive", Input{Trigger: TriggerStartup, HasToken: true, FetchOK: true, Status: models.StatusInactive}, ViewSubscriptionSelection},
		{"unknown status", Input{Trigger: TriggerStartup, HasToken: true, FetchOK: true, Status: "cancelled"}, ViewSubscriptionSelection},
		{"empty status", Input{Trigger: TriggerStartup, HasToken: true, FetchOK: true}, ViewSubscriptionSelection},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NextView(tc.in))
		})
	}
}

func TestNextViewLoginTrustsStatusDirectly(t *testing.T) {
	base := Input{Trigger: TriggerLogin, HasToken: true, FetchOK: true}

	in := base
	in.Status = models.StatusActive
	require.Equal(t, ViewDashboard, NextView(in))

	// Unlike startup reconciliation, a free account signing in goes through
	// plan selection.
	for _, s := range []models.SubscriptionStatus{models.StatusFree, models.StatusInactive, "", "trialing"} {
		in := base
		in.Status = s
		require.Equal(t, ViewSubscriptionSelection, NextView(in), "status %q", s)
	}
}

func TestNextViewRegisterAlwaysSelectsPlan(t *testing.T) {
	// Even a registration response claiming an active subscription must land
	// on plan selection.
	for _, s := range []models.SubscriptionStatus{models.StatusActive, models.StatusFree, models.StatusInactive, ""} {
		in := Input{Trigger: TriggerRegister, HasToken: true, FetchOK: true, Status: s}
		require.Equal(t, ViewSubscriptionSelection, NextView(in), "status %q", s)
	}
}

func TestAllowedGatesProtectedViews(t *testing.T) {
	for _, v := range []View{ViewDashboard, ViewProfile} {
		require.True(t, Allowed(v, true, models.StatusActive))
		require.True(t, Allowed(v, true, models.StatusFree))
		require.False(t, Allowed(v, true, models.StatusInactive))
		require.False(t, Allowed(v, true, ""))
		require.False(t, Allowed(v, false, models.StatusActive))
	}
	for _, v := range []View{ViewLanding, ViewLogin, ViewRegister, ViewSubscriptionSelection} {
		require.True(t, Allowed(v, false, ""))
	}
}
