// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// UserProfile is the per-account document backing the storefront profile
// screen. The client never holds authoritative state: this document is the
// source of truth and local copies are caches.
type UserProfile struct {
	UID            string         `json:"uid"`
	Email          string         `json:"email"`
	Role           Role           `json:"role"`
	DisplayName    string         `json:"display_name"`
	PhotoURL       string         `json:"photo_url"`
	SavedAddresses []SavedAddress `json:"saved_addresses"`
	SavedCards     []SavedCard    `json:"saved_cards"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SavedAddress is a delivery destination the user keeps for reuse.
type SavedAddress struct {
	ID         string    `json:"id"`
	Alias      string    `json:"alias"`
	Text       string    `json:"text"`
	Coordinate orb.Point `json:"coordinate"` // lon, lat
}

// SavedCard is a display-only record of a payment card: brand, holder and
// the last four digits. Full card numbers are never stored anywhere in the
// system; this is deliberately not a payment vault.
type SavedCard struct {
	ID     string `json:"id"`
	Alias  string `json:"alias"`
	Brand  string `json:"brand"`
	Holder string `json:"holder"`
	Last4  string `json:"last4"`
}
