package access

import "github.com/partsquest/cli/internal/client/models"

// Trigger names the event that asks for a view decision. Login and
// registration deliberately do not share the generic reconciliation rules:
// login trusts the returned status directly, and a fresh registration always
// lands on plan selection no matter what status the response carries.
type Trigger int

const (
	// TriggerStartup covers process start and any later re-reconciliation
	// from a stored token.
	TriggerStartup Trigger = iota
	// TriggerLogin is a successful interactive sign-in.
	TriggerLogin
	// TriggerRegister is a successful account creation. The registration
	// response's embedded user is authoritative; the profile must not be
	// re-fetched on this path.
	TriggerRegister
)

// Input carries the facts a view decision depends on.
type Input struct {
	Trigger  Trigger
	HasToken bool
	FetchOK  bool
	Status   models.SubscriptionStatus
}

// Entitled reports whether a subscription status grants access to the
// dashboard and profile screens.
func Entitled(s models.SubscriptionStatus) bool {
	return s == models.StatusActive || s == models.StatusFree
}

// NextView computes the screen that must become active for the given input.
// The result overrides any concurrently requested view: a caller asking for
// the dashboard while the status is inactive still lands on plan selection.
func NextView(in Input) View {
	switch in.Trigger {
	case TriggerRegister:
		return ViewSubscriptionSelection
	case TriggerLogin:
		if in.Status == models.StatusActive {
			return ViewDashboard
		}
		return ViewSubscriptionSelection
	default:
		if !in.HasToken {
			return ViewLanding
		}
		if !in.FetchOK {
			// Invalid token; the caller clears the session.
			return ViewLogin
		}
		if Entitled(in.Status) {
			return ViewDashboard
		}
		return ViewSubscriptionSelection
	}
}

// Allowed reports whether explicit navigation to v is permitted. Only the
// dashboard and profile are gated; every other screen is freely reachable.
func Allowed(v View, hasToken bool, status models.SubscriptionStatus) bool {
	switch v {
	case ViewDashboard, ViewProfile:
		return hasToken && Entitled(status)
	default:
		return true
	}
}
