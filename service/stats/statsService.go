package statssvc

import (
	"context"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
	statsrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/stats"
)

type Service interface {
	// Compute counts items and claims per status, zero-filled. Purely
	// derived from current store contents; nothing is cached.
	Compute(ctx context.Context) (*model.Stats, error)
}

type service struct{ r statsrepo.Repo }

func New(r statsrepo.Repo) Service { return &service{r: r} }

func (s *service) Compute(ctx context.Context) (*model.Stats, error) {
	items, err := s.r.ItemCounts(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := s.r.ClaimCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		PendingApproval: items[string(model.ItemPendingApproval)],
		Approved:        items[string(model.ItemApproved)],
		Claimed:         items[string(model.ItemClaimed)],
		Rejected:        items[string(model.ItemRejected)],
		PendingClaims:   claims[string(model.ClaimPending)],
		ApprovedClaims:  claims[string(model.ClaimApproved)],
		RejectedClaims:  claims[string(model.ClaimRejected)],
	}, nil
}
