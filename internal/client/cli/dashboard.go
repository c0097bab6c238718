package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/partsquest/cli/internal/client/models"
)

func (a *App) listCmd(ctx context.Context) {
	reqs, err := a.requests.Refresh(ctx)
	if err != nil {
		a.handleAPIError(ctx, err)
		return
	}
	if len(reqs) == 0 {
		printlnFn("No part requests yet. Use 'new' to create one.")
		return
	}
	for _, r := range reqs {
		printlnFn(formatRequest(r))
	}
}

func formatRequest(r models.PartRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d  %-16s qty %-4d %-7s %s", r.ID, r.PartNumber, r.Quantity, r.Urgency, r.Status)
	if r.TargetPrice != nil {
		fmt.Fprintf(&b, "  target $%.2f", *r.TargetPrice)
	}
	if r.Description != "" {
		fmt.Fprintf(&b, "  %s", r.Description)
	}
	return b.String()
}

// newRequestCmd collects a part request interactively and submits it.
// Validation failures stay local; the request never leaves the process.
func (a *App) newRequestCmd(ctx context.Context) {
	req, err := promptNewRequest(a.reader, os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return
	}

	if err := a.requests.Create(ctx, req); err != nil {
		a.handleAPIError(ctx, err)
		return
	}
	printlnFn("Part request created.")
}

// promptNewRequest gathers the part-request fields. Quantity defaults to 1,
// target price is optional, urgency defaults to normal.
func promptNewRequest(reader *bufio.Reader, w io.Writer) (models.NewPartRequest, error) {
	var req models.NewPartRequest
	var err error

	if req.PartNumber, err = getSimpleText(reader, "Part number", w); err != nil {
		return req, err
	}
	if req.Description, err = GetOptionalText(reader, "Description", "", w); err != nil {
		return req, err
	}

	qty, err := GetOptionalText(reader, "Quantity", "1", w)
	if err != nil {
		return req, err
	}
	req.Quantity, err = strconv.Atoi(qty)
	if err != nil {
		return req, fmt.Errorf("%w: quantity must be a whole number", models.ErrInvalidRequest)
	}

	price, err := GetOptionalText(reader, "Target price ($, optional)", "", w)
	if err != nil {
		return req, err
	}
	if price != "" {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return req, fmt.Errorf("%w: target price must be numeric", models.ErrInvalidRequest)
		}
		req.TargetPrice = &v
	}

	urgency, err := GetOptionalText(reader, "Urgency (low/normal/high/urgent)", string(models.UrgencyNormal), w)
	if err != nil {
		return req, err
	}
	req.Urgency = models.Urgency(urgency)

	return req, nil
}

// searchCmd stores the dashboard search query. Matching runs server-side;
// the client only carries the text.
func (a *App) searchCmd(args []string) {
	query := strings.Join(args, " ")
	if query == "" {
		printlnFn("Usage: search <text>")
		return
	}
	a.state.SearchQuery = query
	printlnFn("Search query set to: " + query)
}

// voiceCmd fills the search query from one spoken utterance, when a speech
// backend is available.
func (a *App) voiceCmd(ctx context.Context) {
	if !a.recognizer.Supported() {
		printlnFn("Voice capture is not supported in this environment.")
		return
	}
	printlnFn("Listening...")
	text, err := a.recognizer.Capture(ctx)
	if err != nil {
		printlnFn("Voice capture failed:", err.Error())
		return
	}
	a.state.SearchQuery = text
	printlnFn("Voice input received: " + text)
}

// upgradeCmd starts checkout for the Pro plan directly from the dashboard.
func (a *App) upgradeCmd(ctx context.Context) {
	if a.state.Status() == models.StatusActive {
		printlnFn("Your subscription is already active.")
		return
	}
	a.startCheckout(ctx, models.ProPriceID)
}
