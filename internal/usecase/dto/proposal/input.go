package proposaldto

type SubmitProposalInput struct {
	ListingID    string
	ProposerID   string
	Amount       float64
	DurationDays int32
	Message      string
}
