package storage

import "github.com/example/medshare/internal/models"

// AppendFeedback stores a visitor message.
func (s *Store) AppendFeedback(f models.Feedback) error {
	return s.Feedback.Append(f)
}

// AppendNewsletter stores a newsletter subscription.
func (s *Store) AppendNewsletter(n models.NewsletterSubscription) error {
	return s.Newsletter.Append(n)
}
