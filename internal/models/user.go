package models

// User represents a registered account keyed by phone number.
// Field order matches the users.csv header.
type User struct {
	Phone      string `csv:"phone" json:"phone"`
	Name       string `csv:"name" json:"name"`
	Email      string `csv:"email" json:"email"`
	Address    string `csv:"address" json:"address"`
	State      string `csv:"state" json:"state"`
	City       string `csv:"city" json:"city"`
	UserType   string `csv:"userType" json:"userType"`
	IsVerified string `csv:"isVerified" json:"isVerified"`
}

// Pharmacist is an admin-provisioned allow-list entry. Membership is a
// precondition for registering with userType "pharmacist"; the table is
// never mutated by the API.
type Pharmacist struct {
	Phone string `csv:"phone" json:"phone"`
	Name  string `csv:"name" json:"name"`
	Email string `csv:"email" json:"email"`
}

// User types accepted during registration.
const (
	UserTypeConsumer   = "consumer"
	UserTypePharmacist = "pharmacist"
)
