package models

// Listing statuses. A listing is created pending and moves to approved or
// rejected exactly once in intent, though re-approval is not guarded.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Listing is a medicine-for-exchange record with an approval state.
// Field order matches the listings.csv header.
type Listing struct {
	ID        string `csv:"id" json:"id"`
	Name      string `csv:"name" json:"name"`
	Expiry    string `csv:"expiry" json:"expiry"`
	Condition string `csv:"condition" json:"condition"`
	Price     string `csv:"price" json:"price"`
	Timestamp string `csv:"timestamp" json:"timestamp"`
	Image     string `csv:"image" json:"image"`
	Status    string `csv:"status" json:"status"`
}
