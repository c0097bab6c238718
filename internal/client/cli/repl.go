package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/partsquest/cli/internal/client/access"
)

// repl reads one line at a time, parses the first token as the command, and
// dispatches against the active view. Commands run to completion before the
// next line is read, so at most one backend call is in flight and duplicate
// submissions of the same form cannot happen. The loop exits on scanner EOF
// or on "exit"/"quit".
func (a *App) repl(ctx context.Context, scanner *bufio.Scanner) {
	for {
		printlnFn(a.prompt())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printlnFn(a.help())
		default:
			a.dispatch(ctx, cmd, args)
		}
	}
}

func (a *App) prompt() string {
	who := ""
	if a.state.Profile != nil {
		who = a.state.Profile.Email + " "
	}
	return fmt.Sprintf("pq %s[%s]>", who, a.state.View)
}

func (a *App) help() string {
	switch a.state.View {
	case access.ViewLanding:
		return "Available commands: signin, signup, plans, exit"
	case access.ViewLogin:
		return "Available commands: login, signup, back, exit"
	case access.ViewRegister:
		return "Available commands: register, signin, back, exit"
	case access.ViewSubscriptionSelection:
		return "Available commands: plans, subscribe <plan>, refresh, logout, exit"
	case access.ViewDashboard:
		return "Available commands: (l)ist, new, search <text>, voice, profile, upgrade, logout, exit"
	case access.ViewProfile:
		return "Available commands: show, update, back, logout, exit"
	default:
		return "Available commands: help, exit"
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch a.state.View {
	case access.ViewLanding:
		switch cmd {
		case "signin", "login":
			a.setView(ctx, access.ViewLogin)
		case "signup", "register", "start":
			a.setView(ctx, access.ViewRegister)
		case "plans":
			a.printPlans()
		default:
			printlnFn("Unknown command:", cmd)
		}

	case access.ViewLogin:
		switch cmd {
		case "login":
			a.loginCmd(ctx)
		case "signup", "register":
			a.setView(ctx, access.ViewRegister)
		case "back":
			a.setView(ctx, access.ViewLanding)
		default:
			printlnFn("Unknown command:", cmd)
		}

	case access.ViewRegister:
		switch cmd {
		case "register":
			a.registerCmd(ctx)
		case "signin", "login":
			a.setView(ctx, access.ViewLogin)
		case "back":
			a.setView(ctx, access.ViewLanding)
		default:
			printlnFn("Unknown command:", cmd)
		}

	case access.ViewSubscriptionSelection:
		switch cmd {
		case "plans":
			a.printPlans()
		case "subscribe":
			a.subscribeCmd(ctx, args)
		case "refresh":
			a.refreshSessionCmd(ctx)
		case "logout":
			a.logoutCmd(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}

	case access.ViewDashboard:
		switch cmd {
		case "l", "list":
			a.listCmd(ctx)
		case "new", "request":
			a.newRequestCmd(ctx)
		case "search":
			a.searchCmd(args)
		case "voice":
			a.voiceCmd(ctx)
		case "profile":
			a.setView(ctx, access.ViewProfile)
		case "upgrade":
			a.upgradeCmd(ctx)
		case "logout":
			a.logoutCmd(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}

	case access.ViewProfile:
		switch cmd {
		case "show":
			a.showProfileCmd()
		case "update":
			a.updateProfileCmd(ctx)
		case "back":
			a.setView(ctx, access.ViewDashboard)
		case "logout":
			a.logoutCmd(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}

	default:
		printlnFn("Unknown command:", cmd)
	}
}
