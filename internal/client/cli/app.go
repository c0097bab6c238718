// Package cli wires the PartsQuest client together and drives it through an
// interactive command loop. The loop's prompt and command set are a function
// of the active view, which makes the loop the rendering surface of the view
// state machine.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/partsquest/cli/internal/client/access"
	"github.com/partsquest/cli/internal/client/api"
	"github.com/partsquest/cli/internal/client/config"
	"github.com/partsquest/cli/internal/client/models"
	"github.com/partsquest/cli/internal/client/services"
	"github.com/partsquest/cli/internal/client/session"
	"github.com/partsquest/cli/internal/client/state"
	"github.com/partsquest/cli/internal/client/voice"
	"github.com/partsquest/cli/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub that records lines.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// openBrowser hands a URL to the platform browser. It is a seam so tests can
// observe checkout handoffs without spawning anything.
var openBrowser = func(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// App owns the shared application state and performs all mutations from its
// single command loop. Components receive the state struct by reference but
// are only ever invoked from that loop.
type App struct {
	config     *config.Config
	log        logging.Logger
	store      session.Store
	state      *state.State
	auth       services.AuthService
	requests   services.RequestService
	billing    services.BillingService
	recognizer voice.Recognizer
	reader     *bufio.Reader
}

// NewApp builds the full client: session store, gateway, services, and the
// default (unsupported) voice recognizer.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := session.NewFileStore(cfg.TokenFile)
	st := state.New()
	gateway := api.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout, store, log)

	return &App{
		config:     cfg,
		log:        log,
		store:      store,
		state:      st,
		auth:       services.NewAuthService(gateway, store, st, log),
		requests:   services.NewRequestService(gateway, st, log),
		billing:    services.NewBillingService(gateway, log),
		recognizer: voice.Unsupported{},
		reader:     bufio.NewReader(os.Stdin),
	}
}

// Run reconciles the stored session into a starting view, then hands control
// to the command loop until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to PartsQuest (type 'help' for commands)")

	view, err := a.auth.Reconcile(ctx)
	if err != nil {
		a.log.Error(ctx, "session reconciliation failed", "err", err)
		view = access.ViewLanding
	}
	a.setView(ctx, view)

	a.repl(ctx, bufio.NewScanner(os.Stdin))
}

func (a *App) hasToken() bool {
	_, ok := a.store.Token()
	return ok
}

// setView is the only way a view becomes active. Requests for gated views
// are re-evaluated against the session, so a caller asking for the dashboard
// with an inactive subscription still lands on plan selection. Entering the
// dashboard fills the part-request cache if it is empty.
func (a *App) setView(ctx context.Context, v access.View) {
	if !access.Allowed(v, a.hasToken(), a.state.Status()) {
		if !a.hasToken() {
			v = access.ViewLanding
		} else {
			v = access.ViewSubscriptionSelection
		}
	}

	entering := v == access.ViewDashboard && a.state.View != access.ViewDashboard
	a.state.View = v

	if entering && a.state.Requests == nil {
		if _, err := a.requests.Refresh(ctx); err != nil {
			a.handleAPIError(ctx, err)
		}
	}
}

// handleAPIError is the single place gateway failures become state
// transitions. In particular it owns the one authoritative transition to
// plan selection on a subscription gate, no matter which call tripped it.
func (a *App) handleAPIError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidRequest):
		printlnFn(err.Error())
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn("Your session has expired. Please sign in again.")
		if lerr := a.auth.Logout(); lerr != nil {
			a.log.Error(ctx, "logout after expired session failed", "err", lerr)
		}
		a.state.View = access.ViewLogin
	case errors.Is(err, api.ErrSubscriptionRequired):
		printlnFn("A subscription is required for this feature. Please choose a plan.")
		a.state.View = access.ViewSubscriptionSelection
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Network error. Please try again.")
	default:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			printlnFn(apiErr.Message)
		} else {
			printlnFn("Error: " + err.Error())
		}
	}
}
