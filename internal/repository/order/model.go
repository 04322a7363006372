package order

import "time"

type OrderDB struct {
	ID                  string
	RequesterID         int64
	Status              string
	DeliverymanID       *int64
	TripID              *string
	PickupDate          time.Time
	PickupEstablishment string
	Pickup              LocationDB
	Delivery            LocationDB
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type LocationDB struct {
	PostalCode   string
	Street       string
	Neighborhood string
	Number       string
	Complement   string
	City         string
	State        string
	Latitude     float64
	Longitude    float64
}

type OrderItemDB struct {
	ID              int64
	OrderID         string
	Position        int
	Name            string
	Description     string
	Quantity        int
	Weight          float64
	Width           float64
	Height          float64
	Depth           float64
	Packing         string
	CategoryID      int64
	WeightUnitID    int64
	DimensionUnitID int64
}
