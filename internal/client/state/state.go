// Package state defines the application-state struct shared by the CLI's
// components. All mutation happens from the single command loop, so no
// locking is required; the struct exists to keep related state together and
// make the logged-out reset a single operation.
package state

import (
	"github.com/partsquest/cli/internal/client/access"
	"github.com/partsquest/cli/internal/client/models"
)

// State is the client's mutable state: the active view, the authenticated
// user's profile, the part-request cache, and the dashboard search query.
// The bearer token itself lives in the session store, not here.
type State struct {
	View        access.View
	Profile     *models.User
	Requests    []models.PartRequest
	SearchQuery string
}

// New returns the logged-out initial state with the landing view active.
func New() *State {
	return &State{View: access.ViewLanding}
}

// Status returns the profile's subscription status, or empty when no
// profile is loaded.
func (s *State) Status() models.SubscriptionStatus {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.SubscriptionStatus
}

// HasProfile reports whether a profile is currently loaded.
func (s *State) HasProfile() bool { return s.Profile != nil }

// SetRequests replaces the entire part-request cache with the server's
// ordering. The client never re-sorts or patches individual entries.
func (s *State) SetRequests(reqs []models.PartRequest) {
	s.Requests = reqs
}

// Reset drops everything derived from an authenticated session: profile,
// part-request cache, and search query, in one step. The caller clears the
// token and picks the next view; no code path may clear the profile without
// also clearing the cache.
func (s *State) Reset() {
	s.Profile = nil
	s.Requests = nil
	s.SearchQuery = ""
}
