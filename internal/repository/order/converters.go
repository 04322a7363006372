package order

import (
	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:                  o.ID,
		RequesterID:         o.RequesterID,
		Status:              entities.OrderStatus(o.Status),
		DeliverymanID:       o.DeliverymanID,
		TripID:              o.TripID,
		PickupDate:          o.PickupDate,
		PickupEstablishment: o.PickupEstablishment,
		Pickup:              ToLocationDomain(&o.Pickup),
		Delivery:            ToLocationDomain(&o.Delivery),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	for i := range items {
		order.Items = append(order.Items, ToItemDomain(&items[i]))
	}
	return order
}

func ToLocationDomain(l *LocationDB) entities.Location {
	return entities.Location{
		Address: entities.AddressComponents{
			PostalCode:         l.PostalCode,
			Street:             l.Street,
			Neighborhood:       l.Neighborhood,
			Number:             l.Number,
			Complement:         l.Complement,
			City:               l.City,
			State:              l.State,
			ResolvedPostalCode: l.PostalCode,
		},
		Coordinates: entities.Coordinates{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		},
	}
}

func FromLocationDomain(l entities.Location) LocationDB {
	return LocationDB{
		PostalCode:   l.Address.PostalCode,
		Street:       l.Address.Street,
		Neighborhood: l.Address.Neighborhood,
		Number:       l.Address.Number,
		Complement:   l.Address.Complement,
		City:         l.Address.City,
		State:        l.Address.State,
		Latitude:     l.Coordinates.Latitude,
		Longitude:    l.Coordinates.Longitude,
	}
}

func ToItemDomain(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		ID:              i.ID,
		Name:            i.Name,
		Description:     i.Description,
		Quantity:        i.Quantity,
		Weight:          i.Weight,
		Width:           i.Width,
		Height:          i.Height,
		Depth:           i.Depth,
		Packing:         i.Packing,
		CategoryID:      i.CategoryID,
		WeightUnitID:    i.WeightUnitID,
		DimensionUnitID: i.DimensionUnitID,
	}
}

func FromNewOrder(id string, o *entities.NewOrder) *OrderDB {
	return &OrderDB{
		ID:                  id,
		RequesterID:         o.RequesterID,
		Status:              o.Status.String(),
		DeliverymanID:       o.DeliverymanID,
		TripID:              o.TripID,
		PickupDate:          o.PickupDate,
		PickupEstablishment: o.PickupEstablishment,
		Pickup:              FromLocationDomain(o.Pickup),
		Delivery:            FromLocationDomain(o.Delivery),
	}
}
