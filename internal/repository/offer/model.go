package offer

import "time"

type PickupOfferDB struct {
	ID            int64
	OrderID       string
	DeliverymanID int64
	DeliveryValue int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
