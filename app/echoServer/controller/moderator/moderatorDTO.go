package moderator

type ResolveClaimReq struct {
	Action string `json:"action" validate:"required"`
}
