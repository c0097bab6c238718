// Package models holds the client-side data model for the PartsQuest CLI:
// the user profile, part requests, and the subscription plan catalog.
package models

// SubscriptionStatus is the server-authoritative subscription tier of an
// account. It is the sole input to feature gating on the client.
type SubscriptionStatus string

const (
	StatusFree     SubscriptionStatus = "free"
	StatusActive   SubscriptionStatus = "active"
	StatusInactive SubscriptionStatus = "inactive"
)

// User is the authenticated user's profile as returned by the backend.
// The whole struct is replaced on every successful fetch or update; fields
// are never patched individually.
type User struct {
	ID                 int64              `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Company            string             `json:"company"`
	Phone              string             `json:"phone"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
}
