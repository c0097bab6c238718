package services

import (
	"context"
	"fmt"

	"github.com/partsquest/cli/internal/client/api"
	"github.com/partsquest/cli/internal/logging"
)

// BillingService starts subscription purchases. The returned URL points at
// the payment provider's hosted checkout; the caller hands the whole
// surface over to it rather than transitioning in-app.
type BillingService interface {
	StartCheckout(ctx context.Context, priceID string) (string, error)
}

type billingService struct {
	client api.Client
	log    logging.Logger
}

// NewBillingService constructs a BillingService over the gateway.
func NewBillingService(client api.Client, log logging.Logger) BillingService {
	return &billingService{client: client, log: log.With("component", "billing")}
}

func (b *billingService) StartCheckout(ctx context.Context, priceID string) (string, error) {
	url, err := b.client.CreateCheckoutSession(ctx, priceID)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	b.log.Info(ctx, "checkout session created", "price_id", priceID)
	return url, nil
}
