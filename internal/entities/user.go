package entities

type UserProfile struct {
	ID      int64
	Name    string
	Address Location
}
