package user

type UserDB struct {
	ID           int64
	Name         string
	PostalCode   string
	Street       string
	Neighborhood string
	Number       string
	Complement   string
	City         string
	State        string
	Latitude     *float64
	Longitude    *float64
}
