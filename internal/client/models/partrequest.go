package models

import (
	"errors"
	"fmt"
)

// Urgency of a part request. The backend accepts exactly these values.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// StatusPending is the initial server-assigned status of a new request.
// Other statuses are server-defined and rendered as-is.
const StatusPending = "pending"

// ErrInvalidRequest marks client-side validation failures. Callers that see
// it must not have made a network call.
var ErrInvalidRequest = errors.New("invalid part request")

// PartRequest is a procurement record as held by the server. IDs and status
// are assigned server-side; the client never fabricates either.
type PartRequest struct {
	ID          int64    `json:"id"`
	PartNumber  string   `json:"part_number"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	TargetPrice *float64 `json:"target_price,omitempty"`
	Urgency     Urgency  `json:"urgency"`
	Status      string   `json:"status"`
}

// NewPartRequest is the payload for creating a part request.
type NewPartRequest struct {
	PartNumber  string   `json:"part_number"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	TargetPrice *float64 `json:"target_price,omitempty"`
	Urgency     Urgency  `json:"urgency"`
}

// Validate checks the payload before it is sent anywhere. Quantity must be
// at least 1 and the target price, when present, non-negative. An empty
// urgency defaults to normal rather than failing.
func (r *NewPartRequest) Validate() error {
	if r.PartNumber == "" {
		return fmt.Errorf("%w: part number is required", ErrInvalidRequest)
	}
	if r.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidRequest)
	}
	if r.TargetPrice != nil && *r.TargetPrice < 0 {
		return fmt.Errorf("%w: target price must not be negative", ErrInvalidRequest)
	}
	if r.Urgency == "" {
		r.Urgency = UrgencyNormal
	}
	switch r.Urgency {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
	default:
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalidRequest, r.Urgency)
	}
	return nil
}
