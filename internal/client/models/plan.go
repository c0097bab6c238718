package models

// Plan describes a purchasable subscription tier. PriceID is the payment
// provider's price identifier passed to checkout-session creation.
type Plan struct {
	Name       string
	PriceID    string
	MonthlyUSD float64
	Blurb      string
}

// ProPriceID is the price used by the dashboard's upgrade shortcut.
const ProPriceID = "price_1QKxJhJNcmPXDtNg8YQzQhWx"

// Plans returns the subscription catalog shown on the plan-selection screen,
// in display order.
func Plans() []Plan {
	return []Plan{
		{Name: "Test", PriceID: "price_1RyNopKAQFTUDRwnEcbiX8RQ", MonthlyUSD: 0.50, Blurb: "Perfect for testing all features"},
		{Name: "Starter", PriceID: "price_1RyNwlKAQFTUDRwnVWZpwUn3", MonthlyUSD: 199, Blurb: "Essential features for small teams"},
		{Name: "Professional", PriceID: "price_1RyNy2KAQFTUDRwnKOU8UfD3", MonthlyUSD: 399, Blurb: "Advanced AI-powered features"},
		{Name: "Fleet", PriceID: "price_1RyNzDKAQFTUDRwnv3XmIOFk", MonthlyUSD: 699, Blurb: "For large operations"},
		{Name: "Enterprise", PriceID: "price_1RyO0HKAQFTUDRwnDQSDomWt", MonthlyUSD: 1200, Blurb: "Unlimited everything"},
	}
}
