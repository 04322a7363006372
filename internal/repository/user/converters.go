package user

import "marketplace/internal/entities"

// ToDomain: адрес профиля без координат считается незаполненным.
func ToDomain(u *UserDB) *entities.UserProfile {
	if u == nil {
		return nil
	}

	profile := &entities.UserProfile{
		ID:   u.ID,
		Name: u.Name,
	}
	if u.Latitude == nil || u.Longitude == nil {
		return profile
	}

	profile.Address = entities.Location{
		Address: entities.AddressComponents{
			PostalCode:         u.PostalCode,
			Street:             u.Street,
			Neighborhood:       u.Neighborhood,
			Number:             u.Number,
			Complement:         u.Complement,
			City:               u.City,
			State:              u.State,
			ResolvedPostalCode: u.PostalCode,
		},
		Coordinates: entities.Coordinates{
			Latitude:  *u.Latitude,
			Longitude: *u.Longitude,
		},
	}
	return profile
}
