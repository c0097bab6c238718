// Package services contains the application services of the PartsQuest CLI.
// This file defines the authentication service: login, registration, logout,
// and session reconciliation on startup.
package services

import (
	"context"
	"fmt"

	"github.com/partsquest/cli/internal/client/access"
	"github.com/partsquest/cli/internal/client/api"
	"github.com/partsquest/cli/internal/client/session"
	"github.com/partsquest/cli/internal/client/state"
	"github.com/partsquest/cli/internal/logging"
)

// AuthService owns the session lifecycle. Each successful operation returns
// the view the caller must switch to; the decision itself lives in the
// access package.
//
// Contract:
//   - Login: authenticate, persist the token, load the embedded profile.
//   - Register: create the account; the response's embedded user is
//     authoritative and the profile is NOT re-fetched afterwards.
//   - Reconcile: derive the correct view from a possibly stored token; makes
//     no network call when no token is present.
//   - UpdateProfile: push edited fields, replace the cached profile wholesale.
//   - Logout: drop the token, profile, and part-request cache as one step.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (access.View, error)
	Register(ctx context.Context, req api.RegisterRequest) (access.View, error)
	Reconcile(ctx context.Context) (access.View, error)
	UpdateProfile(ctx context.Context, req api.ProfileUpdate) error
	Logout() error
}

type authService struct {
	client api.Client
	store  session.Store
	state  *state.State
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway,
// session store, and shared state.
func NewAuthService(client api.Client, store session.Store, st *state.State, log logging.Logger) AuthService {
	return &authService{client: client, store: store, state: st, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, email, password string) (access.View, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if err := a.store.SetToken(res.Token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	user := res.User
	a.state.Profile = &user

	a.log.Info(ctx, "logged in", "email", user.Email, "status", user.SubscriptionStatus)
	return access.NextView(access.Input{
		Trigger:  access.TriggerLogin,
		HasToken: true,
		FetchOK:  true,
		Status:   user.SubscriptionStatus,
	}), nil
}

func (a *authService) Register(ctx context.Context, req api.RegisterRequest) (access.View, error) {
	res, err := a.client.Register(ctx, req)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	if err := a.store.SetToken(res.Token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	// The registration response's user is authoritative. Re-fetching the
	// profile here can race a not-yet-consistent read and must not happen.
	user := res.User
	a.state.Profile = &user

	a.log.Info(ctx, "registered", "email", user.Email)
	return access.NextView(access.Input{
		Trigger:  access.TriggerRegister,
		HasToken: true,
		FetchOK:  true,
		Status:   user.SubscriptionStatus,
	}), nil
}

// Reconcile derives the view to show from the stored session. Without a
// token it answers landing without touching the network. With a token it
// fetches the profile; any failure invalidates the session and lands on the
// login screen.
func (a *authService) Reconcile(ctx context.Context) (access.View, error) {
	if _, ok := a.store.Token(); !ok {
		return access.ViewLanding, nil
	}

	user, err := a.client.Profile(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile fetch failed, clearing session", "err", err)
		if clearErr := a.clearSession(); clearErr != nil {
			return "", clearErr
		}
		return access.ViewLogin, nil
	}

	a.state.Profile = user
	return access.NextView(access.Input{
		Trigger:  access.TriggerStartup,
		HasToken: true,
		FetchOK:  true,
		Status:   user.SubscriptionStatus,
	}), nil
}

// UpdateProfile sends the editable profile fields and replaces the cached
// profile wholesale with the server's response.
func (a *authService) UpdateProfile(ctx context.Context, req api.ProfileUpdate) error {
	user, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	a.state.Profile = user
	return nil
}

func (a *authService) Logout() error {
	return a.clearSession()
}

// clearSession drops the token and every piece of state derived from it as
// one logical step. The state reset and token removal never happen
// separately.
func (a *authService) clearSession() error {
	a.state.Reset()
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
