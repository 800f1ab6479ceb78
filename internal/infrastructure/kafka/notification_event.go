package kafka

type NotificationEvent struct {
	EventID     string `json:"event_id"`
	Verb        string `json:"verb"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	TargetKind  string `json:"target_kind"`
	TargetID    string `json:"target_id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
}
