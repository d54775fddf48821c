package storage

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/example/medshare/internal/models"
)

// NewListingID returns a fresh random hex listing identifier.
func NewListingID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateListing appends a new listing row.
func (s *Store) CreateListing(l models.Listing) error {
	return s.Listings.Append(l)
}

// ListingsByStatus returns all listings with the given status, in file order.
func (s *Store) ListingsByStatus(status string) ([]models.Listing, error) {
	all, err := s.Listings.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Listing, 0, len(all))
	for _, l := range all {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

// SetListingStatus rewrites the table with the listing's status changed.
// Returns ErrNotFound when no listing has the given id; the file is left
// untouched in that case.
func (s *Store) SetListingStatus(id, status string) error {
	return s.Listings.Update(func(listings []models.Listing) ([]models.Listing, error) {
		for i := range listings {
			if listings[i].ID == id {
				listings[i].Status = status
				return listings, nil
			}
		}
		return nil, ErrNotFound
	})
}
