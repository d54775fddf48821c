package storage

import "github.com/example/medshare/internal/models"

// ProfileUpdate carries the mutable profile fields. Empty fields keep their
// stored value; phone, userType and isVerified are never touched here.
type ProfileUpdate struct {
	Name    string
	Email   string
	Address string
	State   string
	City    string
}

// GetUserByPhone returns the user record for phone or ErrNotFound.
func (s *Store) GetUserByPhone(phone string) (models.User, error) {
	users, err := s.Users.All()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UpsertOnVerify records a successful OTP verification. A new phone gets a
// verified record appended; an existing record is replaced only when all of
// name, state, city and userType are supplied, otherwise it is left as-is and
// the stale record is returned. Phone is immutable either way.
func (s *Store) UpsertOnVerify(phone, name, state, city, userType string) (models.User, error) {
	var result models.User
	err := s.Users.Update(func(users []models.User) ([]models.User, error) {
		for i, u := range users {
			if u.Phone != phone {
				continue
			}
			if name != "" && state != "" && city != "" && userType != "" {
				users[i] = models.User{
					Phone:      u.Phone,
					Name:       name,
					State:      state,
					City:       city,
					UserType:   userType,
					IsVerified: "true",
				}
				result = users[i]
			} else {
				result = u
			}
			return users, nil
		}
		result = models.User{
			Phone:      phone,
			Name:       name,
			State:      state,
			City:       city,
			UserType:   userType,
			IsVerified: "true",
		}
		return append(users, result), nil
	})
	return result, err
}

// UpdateUserProfile overwrites the provided fields on the record for phone.
// Returns ErrNotFound if no such user exists.
func (s *Store) UpdateUserProfile(phone string, upd ProfileUpdate) (models.User, error) {
	var result models.User
	err := s.Users.Update(func(users []models.User) ([]models.User, error) {
		for i, u := range users {
			if u.Phone != phone {
				continue
			}
			if upd.Name != "" {
				u.Name = upd.Name
			}
			if upd.Email != "" {
				u.Email = upd.Email
			}
			if upd.Address != "" {
				u.Address = upd.Address
			}
			if upd.State != "" {
				u.State = upd.State
			}
			if upd.City != "" {
				u.City = upd.City
			}
			users[i] = u
			result = u
			return users, nil
		}
		return nil, ErrNotFound
	})
	return result, err
}

// IsPharmacistAllowed reports whether phone is on the pharmacist allow-list.
func (s *Store) IsPharmacistAllowed(phone string) (bool, error) {
	entries, err := s.Pharmacists.All()
	if err != nil {
		return false, err
	}
	for _, p := range entries {
		if p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}
