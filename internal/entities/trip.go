package entities

import "time"

type TripStatus string

const (
	TripPublished TripStatus = "published"
	TripFull      TripStatus = "full"
	TripFinished  TripStatus = "finished"
	TripCanceled  TripStatus = "canceled"
)

func (s TripStatus) String() string {
	return string(s)
}

// Trip - опубликованный курьером маршрут.
type Trip struct {
	ID            string
	DeliverymanID int64
	Status        TripStatus
	Origin        string
	Destination   string
	DepartureAt   time.Time
}

func (t Trip) AcceptsOrders() bool {
	return t.Status == TripPublished
}
