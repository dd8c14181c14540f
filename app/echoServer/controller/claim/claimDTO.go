package claim

type ClaimReq struct {
	ClaimantID   string `json:"claimantId" validate:"required"`
	ClaimantName string `json:"claimantName" validate:"required"`
}
