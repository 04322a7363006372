package entities

// AddressComponents - адрес в форме, как его заполняет пользователь.
// ResolvedPostalCode выставляется после успешного поиска по CEP; если
// пользователь потом меняет PostalCode, адрес снова считается нерезолвленным.
type AddressComponents struct {
	PostalCode         string
	Street             string
	Neighborhood       string
	Number             string
	Complement         string
	City               string
	State              string
	ResolvedPostalCode string
}

func (a AddressComponents) IsResolved() bool {
	return a.PostalCode != "" && a.ResolvedPostalCode == a.PostalCode
}

// StructuredAddress - результат поиска по почтовому индексу.
type StructuredAddress struct {
	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Location struct {
	Address     AddressComponents
	Coordinates Coordinates
}
