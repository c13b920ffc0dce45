package model

import "gather/internal/domain/entity"

// Coordinates the service omits are substituted with the pole marker rather
// than 0,0 so that "missing" is distinguishable from a real fix.
const (
	defaultLatitude  = 90.0
	defaultLongitude = 0.0
)

// LocationModel is the wire shape of a location record. Latitude and
// longitude are optional on decode.
type LocationModel struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zip_code"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func ToLocationDomain(m LocationModel) entity.Location {
	loc := entity.Location{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		ZipCode:   m.ZipCode,
		Country:   m.Country,
		Latitude:  defaultLatitude,
		Longitude: defaultLongitude,
	}
	if m.Latitude != nil {
		loc.Latitude = *m.Latitude
	}
	if m.Longitude != nil {
		loc.Longitude = *m.Longitude
	}

	return loc
}

func ToLocationDomains(models []LocationModel) []entity.Location {
	locations := make([]entity.Location, 0, len(models))
	for _, m := range models {
		locations = append(locations, ToLocationDomain(m))
	}

	return locations
}

func FromLocationDomain(loc entity.Location) LocationModel {
	lat, lon := loc.Latitude, loc.Longitude

	return LocationModel{
		ID:        loc.ID,
		Name:      loc.Name,
		Address:   loc.Address,
		City:      loc.City,
		State:     loc.State,
		ZipCode:   loc.ZipCode,
		Country:   loc.Country,
		Latitude:  &lat,
		Longitude: &lon,
	}
}
