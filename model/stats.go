// model/stats.go
package model

// Stats is the moderator dashboard counters, zero-filled so every key is
// present even when a status has no rows.
type Stats struct {
	PendingApproval int64 `json:"pending_approval"`
	Approved        int64 `json:"approved"`
	Claimed         int64 `json:"claimed"`
	Rejected        int64 `json:"rejected"`
	PendingClaims   int64 `json:"pending_claims"`
	ApprovedClaims  int64 `json:"approved_claims"`
	RejectedClaims  int64 `json:"rejected_claims"`
}
