package models

// Feedback is an append-only visitor message.
type Feedback struct {
	Name      string `csv:"name" json:"name"`
	Email     string `csv:"email" json:"email"`
	Feedback  string `csv:"feedback" json:"feedback"`
	Timestamp string `csv:"timestamp" json:"timestamp"`
}

// NewsletterSubscription records a subscribed e-mail address.
type NewsletterSubscription struct {
	Email     string `csv:"email" json:"email"`
	Timestamp string `csv:"timestamp" json:"timestamp"`
}
