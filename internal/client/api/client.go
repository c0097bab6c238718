// Package api is the client's gateway to the PartsQuest backend. It exposes
// one operation per REST endpoint and normalizes every outcome into either a
// decoded payload or one of a small set of errors the caller can act on.
package api

import (
	"context"

	"github.com/partsquest/cli/internal/client/models"
)

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

// ProfileUpdate carries the editable profile fields. Email is fixed at
// registration and cannot be changed here.
type ProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

// AuthResult is the response to both login and registration: a bearer token
// plus the user embedded in the same response. For registration the embedded
// user is authoritative and must not be overwritten by a follow-up profile
// fetch.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client is the remote gateway. Implementations attach the bearer token
// when one is available and map HTTP statuses to the package's sentinel
// errors, so callers interpret 401/403 as state transitions rather than
// raw failures.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req ProfileUpdate) (*models.User, error)
	ListPartRequests(ctx context.Context) ([]models.PartRequest, error)
	CreatePartRequest(ctx context.Context, req models.NewPartRequest) (*models.PartRequest, error)
	// CreateCheckoutSession returns the payment provider's hosted checkout
	// URL. Navigating there is the caller's job; it is not an in-app view
	// transition.
	CreateCheckoutSession(ctx context.Context, priceID string) (string, error)
}

// TokenSource yields the current bearer token, if any. The session store
// satisfies it.
type TokenSource interface {
	Token() (string, bool)
}
