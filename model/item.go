// model/item.go
package model

import "time"

type ItemType string

const (
	ItemLost  ItemType = "lost"
	ItemFound ItemType = "found"
)

type ItemStatus string

const (
	ItemPendingApproval ItemStatus = "pending_approval"
	ItemApproved        ItemStatus = "approved"
	ItemRejected        ItemStatus = "rejected"
	ItemClaimed         ItemStatus = "claimed"
)

type Item struct {
	ID          string     `json:"id"`
	Type        ItemType   `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        string     `json:"date"`
	Contact     string     `json:"contact"`
	Status      ItemStatus `json:"status"`
	ClaimantID  *string    `json:"claimant_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
