// Package notify is the fire-and-forget side channel informed on every
// lifecycle transition. Sinks never fail the triggering operation; delivery
// problems are logged and dropped.
package notify

import (
	"context"
	"log/slog"
)

type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	TypeSubmission    = "submission"
	TypeModeration    = "moderation"
	TypeClaimRequest  = "claim_request"
	TypeClaimApproved = "claim_approved"
	TypeClaimRejected = "claim_rejected"
)

type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// LogNotifier emits notifications as log lines, the default sink.
type LogNotifier struct {
	Log *slog.Logger
}

func NewLog(log *slog.Logger) *LogNotifier { return &LogNotifier{Log: log} }

func (n *LogNotifier) Notify(_ context.Context, e Event) {
	n.Log.Info("notification", "type", e.Type, "message", e.Message)
}
