package services

import (
	"context"
	"fmt"

	"github.com/partsquest/cli/internal/client/api"
	"github.com/partsquest/cli/internal/client/models"
	"github.com/partsquest/cli/internal/client/state"
	"github.com/partsquest/cli/internal/logging"
)

// RequestService is the part-request workspace: a read-mostly cache of the
// user's requests, refreshed wholesale from the server.
//
// Contract:
//   - Refresh: replace the entire cache with the server's ordering.
//   - Create: validate locally first (invalid input never reaches the
//     network), then create and refresh; the new entry comes back via the
//     refresh, never by local insertion.
//   - Cached: the current cache, in server order.
//
// A 403 from either operation is returned unchanged (it is the router's
// signal to force plan selection) and leaves the cache untouched.
type RequestService interface {
	Refresh(ctx context.Context) ([]models.PartRequest, error)
	Create(ctx context.Context, req models.NewPartRequest) error
	Cached() []models.PartRequest
}

type requestService struct {
	client api.Client
	state  *state.State
	log    logging.Logger
}

// NewRequestService constructs a RequestService over the gateway and shared
// state.
func NewRequestService(client api.Client, st *state.State, log logging.Logger) RequestService {
	return &requestService{client: client, state: st, log: log.With("component", "requests")}
}

func (r *requestService) Refresh(ctx context.Context) ([]models.PartRequest, error) {
	reqs, err := r.client.ListPartRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list part requests: %w", err)
	}
	r.state.SetRequests(reqs)
	return reqs, nil
}

func (r *requestService) Create(ctx context.Context, req models.NewPartRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	created, err := r.client.CreatePartRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("create part request: %w", err)
	}
	r.log.Info(ctx, "part request created", "id", created.ID, "part_number", created.PartNumber)

	// The new entry enters the cache via the refresh; the server assigns
	// its id and status.
	if _, err := r.Refresh(ctx); err != nil {
		return fmt.Errorf("request created, refresh failed: %w", err)
	}
	return nil
}

func (r *requestService) Cached() []models.PartRequest {
	return r.state.Requests
}
