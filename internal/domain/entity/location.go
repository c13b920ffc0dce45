package entity

// Location is a named place an activity can happen at.
type Location struct {
	ID        int
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Latitude  float64
	Longitude float64
}

// SamePlace reports whether two locations describe the same place. The remote
// service has no uniqueness constraint, so name+address is the working key.
func (l Location) SamePlace(other Location) bool {
	return l.Name == other.Name && l.Address == other.Address
}
