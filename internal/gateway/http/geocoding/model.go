package geocoding

// nominatimPlace - элемент ответа Nominatim /search; координаты приходят
// строками.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
