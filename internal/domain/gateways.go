package domain

import "context"

// Notification verbs emitted by the transition engine.
const (
	VerbProposalAccepted    = "proposal_accepted"
	VerbProposalRejected    = "proposal_rejected"
	VerbAssignmentStarted   = "assignment_started"
	VerbAssignmentCompleted = "assignment_completed"
	VerbDisputeOpened       = "dispute_opened"
	VerbDisputeResolved     = "dispute_resolved"
)

type Notification struct {
	Verb        string
	SenderID    string
	RecipientID string
	TargetKind  OwnerKind
	TargetID    string
	Title       string
	Message     string
}

// NotificationGateway is fire-and-forget: the engine never consumes a result
// beyond the error, and a failed dispatch must not roll back a transition.
type NotificationGateway interface {
	Notify(ctx context.Context, notification Notification) error
}

// ChatProvisioner adds a participant to the chat room keyed by listing id.
// Idempotent: safe to call repeatedly for the same user and room.
type ChatProvisioner interface {
	EnsureParticipant(ctx context.Context, listingID, userID, role string) error
}
