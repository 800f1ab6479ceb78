package listingdto

type CreateListingInput struct {
	OwnerID     string
	CategoryID  string
	Title       string
	Description string
	BudgetMin   float64
	BudgetMax   float64
}
