package cli

import (
	"context"
	"errors"
	"os"

	"github.com/partsquest/cli/internal/client/access"
	"github.com/partsquest/cli/internal/client/api"
)

// loginCmd prompts for credentials and signs in. Invalid credentials keep
// the user on the login screen with a plain message; other failures go
// through the central error handler.
func (a *App) loginCmd(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}
	defer wipeBytes(password)

	view, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn("Invalid email or password.")
			return
		}
		a.handleAPIError(ctx, err)
		return
	}

	printlnFn("Signed in.")
	a.setView(ctx, view)
}

// registerCmd collects account details and creates the account. A new
// account always lands on plan selection.
func (a *App) registerCmd(ctx context.Context) {
	req := api.RegisterRequest{}

	var err error
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}
	defer wipeBytes(password)
	req.Password = string(password)

	if req.FirstName, err = getSimpleText(a.reader, "First name", os.Stdout); err != nil {
		return
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name", os.Stdout); err != nil {
		return
	}
	if req.Company, err = GetOptionalText(a.reader, "Company", "", os.Stdout); err != nil {
		return
	}
	if req.Phone, err = GetOptionalText(a.reader, "Phone", "", os.Stdout); err != nil {
		return
	}

	view, err := a.auth.Register(ctx, req)
	if err != nil {
		a.handleAPIError(ctx, err)
		return
	}

	printlnFn("Account created. Choose a plan to get started.")
	a.setView(ctx, view)
}

func (a *App) logoutCmd(ctx context.Context) {
	if err := a.auth.Logout(); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
	}
	printlnFn("Signed out.")
	a.setView(ctx, access.ViewLogin)
}

// refreshSessionCmd re-runs reconciliation, typically after the user
// completed checkout in the browser and the subscription became active.
func (a *App) refreshSessionCmd(ctx context.Context) {
	view, err := a.auth.Reconcile(ctx)
	if err != nil {
		a.handleAPIError(ctx, err)
		return
	}
	a.setView(ctx, view)
}
