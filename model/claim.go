// model/claim.go
package model

import "time"

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

type Claim struct {
	ID           string      `json:"id"`
	ItemID       string      `json:"item_id"`
	ClaimantName string      `json:"claimant_name"`
	ClaimantID   string      `json:"claimant_id"`
	Status       ClaimStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// PendingClaim is a pending claim joined with the descriptive fields of the
// item it targets, the shape the moderator review queue renders.
type PendingClaim struct {
	Claim
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
}
