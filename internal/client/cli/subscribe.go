package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/partsquest/cli/internal/client/models"
)

func (a *App) printPlans() {
	printlnFn("Available plans:")
	for i, p := range models.Plans() {
		printlnFn(fmt.Sprintf("  %d. %-13s $%.2f/month - %s", i+1, p.Name, p.MonthlyUSD, p.Blurb))
	}
}

// subscribeCmd resolves a plan by number or name and starts checkout for it.
func (a *App) subscribeCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: subscribe <plan number or name>")
		a.printPlans()
		return
	}

	plan, ok := resolvePlan(args[0])
	if !ok {
		printlnFn("Unknown plan:", args[0])
		a.printPlans()
		return
	}
	a.startCheckout(ctx, plan.PriceID)
}

func resolvePlan(arg string) (models.Plan, bool) {
	plans := models.Plans()
	if n, err := strconv.Atoi(arg); err == nil {
		if n >= 1 && n <= len(plans) {
			return plans[n-1], true
		}
		return models.Plan{}, false
	}
	for _, p := range plans {
		if strings.EqualFold(p.Name, arg) {
			return p, true
		}
	}
	return models.Plan{}, false
}

// startCheckout creates a checkout session and hands the whole surface over
// to the provider's hosted page. Completing payment happens outside the
// client; 'refresh' on the plan screen picks up the new status afterwards.
func (a *App) startCheckout(ctx context.Context, priceID string) {
	url, err := a.billing.StartCheckout(ctx, priceID)
	if err != nil {
		a.handleAPIError(ctx, err)
		return
	}

	printlnFn("Opening checkout: " + url)
	if err := openBrowser(url); err != nil {
		printlnFn("Could not open a browser. Visit this URL to complete checkout:")
		printlnFn(url)
	}
	printlnFn("After completing payment, run 'refresh' on the plan screen to activate your subscription.")
}
