package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/partsquest/cli/internal/client/api"
)

func (a *App) showProfileCmd() {
	u := a.state.Profile
	if u == nil {
		printlnFn("No profile loaded.")
		return
	}
	printlnFn(fmt.Sprintf("Email:        %s", u.Email))
	printlnFn(fmt.Sprintf("Name:         %s %s", u.FirstName, u.LastName))
	printlnFn(fmt.Sprintf("Company:      %s", u.Company))
	printlnFn(fmt.Sprintf("Phone:        %s", u.Phone))
	printlnFn(fmt.Sprintf("Subscription: %s", u.SubscriptionStatus))
}

// updateProfileCmd edits the profile fields. Empty input keeps the current
// value; email is fixed and not offered for editing.
func (a *App) updateProfileCmd(ctx context.Context) {
	current := a.state.Profile
	if current == nil {
		printlnFn("No profile loaded.")
		return
	}

	req := api.ProfileUpdate{}
	var err error
	if req.FirstName, err = GetOptionalText(a.reader, "First name", current.FirstName, os.Stdout); err != nil {
		return
	}
	if req.LastName, err = GetOptionalText(a.reader, "Last name", current.LastName, os.Stdout); err != nil {
		return
	}
	if req.Company, err = GetOptionalText(a.reader, "Company", current.Company, os.Stdout); err != nil {
		return
	}
	if req.Phone, err = GetOptionalText(a.reader, "Phone", current.Phone, os.Stdout); err != nil {
		return
	}

	if err := a.auth.UpdateProfile(ctx, req); err != nil {
		a.handleAPIError(ctx, err)
		return
	}
	printlnFn("Profile updated.")
}
