// Package access decides which screen the user may see. The decision is a
// pure function of session and subscription facts, so the gating policy can
// be tested without any UI or network wiring.
package access

// View identifies one of the client's screens. Exactly one view is active
// at a time.
type View string

const (
	ViewLanding               View = "landing"
	ViewLogin                 View = "login"
	ViewRegister              View = "register"
	ViewSubscriptionSelection View = "subscription-selection"
	ViewDashboard             View = "dashboard"
	ViewProfile               View = "profile"
)
