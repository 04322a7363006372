package entities

import "time"

// PickupOffer - ставка курьера на открытый заказ. DeliveryValue хранится в
// минимальных единицах валюты (сентаво).
type PickupOffer struct {
	ID            int64
	OrderID       string
	DeliverymanID int64
	DeliveryValue int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

func (o PickupOffer) IsDeleted() bool {
	return o.DeletedAt != nil
}

type NewPickupOffer struct {
	OrderID       string
	DeliverymanID int64
	DeliveryValue int64
}

// DeliverymanSelection - результат выбора курьера заказчиком.
type DeliverymanSelection struct {
	OrderID       string
	RequesterID   int64
	DeliverymanID int64
	Status        OrderStatus
	SelectedAt    time.Time
}
