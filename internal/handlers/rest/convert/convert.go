// Package convert переводит сущности в dto REST API и обратно.
package convert

import (
	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func DraftItemFromInput(localID string, in dto.DraftItemInput) entities.DraftItem {
	return entities.DraftItem{
		LocalID:         localID,
		Name:            in.Name,
		Description:     pointer.Get(in.Description),
		Quantity:        in.Quantity,
		Weight:          in.Weight,
		Width:           in.Width,
		Height:          in.Height,
		Depth:           in.Depth,
		Packing:         pointer.Get(in.Packing),
		CategoryID:      pointer.Get(in.CategoryID),
		WeightUnitID:    pointer.Get(in.WeightUnitID),
		DimensionUnitID: pointer.Get(in.DimensionUnitID),
		ImageURI:        in.ImageURI,
	}
}

func DraftItem(item entities.DraftItem) dto.DraftItem {
	return dto.DraftItem{
		LocalID:         item.LocalID,
		Name:            item.Name,
		Description:     optional(item.Description),
		Quantity:        item.Quantity,
		Weight:          item.Weight,
		Width:           item.Width,
		Height:          item.Height,
		Depth:           item.Depth,
		Packing:         optional(item.Packing),
		CategoryID:      optional(item.CategoryID),
		WeightUnitID:    optional(item.WeightUnitID),
		DimensionUnitID: optional(item.DimensionUnitID),
		ImageURI:        item.ImageURI,
	}
}

func DraftItems(items []entities.DraftItem) []dto.DraftItem {
	out := make([]dto.DraftItem, 0, len(items))
	for _, item := range items {
		out = append(out, DraftItem(item))
	}
	return out
}

func StructuredAddress(a entities.StructuredAddress) dto.StructuredAddress {
	return dto.StructuredAddress{
		PostalCode:   a.PostalCode,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func Coordinates(c entities.Coordinates) dto.Coordinates {
	return dto.Coordinates{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

func AddressComponents(a entities.AddressComponents) dto.AddressComponents {
	return dto.AddressComponents{
		PostalCode:   optional(a.PostalCode),
		Street:       optional(a.Street),
		Neighborhood: optional(a.Neighborhood),
		Number:       optional(a.Number),
		Complement:   optional(a.Complement),
		City:         optional(a.City),
		State:        optional(a.State),
	}
}

// AddressComponentsFromDTO не переносит признак резолва: адрес от клиента
// всегда считается нерезолвленным.
func AddressComponentsFromDTO(a *dto.AddressComponents) entities.AddressComponents {
	if a == nil {
		return entities.AddressComponents{}
	}
	return entities.AddressComponents{
		PostalCode:   pointer.Get(a.PostalCode),
		Street:       pointer.Get(a.Street),
		Neighborhood: pointer.Get(a.Neighborhood),
		Number:       pointer.Get(a.Number),
		Complement:   pointer.Get(a.Complement),
		City:         pointer.Get(a.City),
		State:        pointer.Get(a.State),
	}
}

func Location(l entities.Location) dto.Location {
	return dto.Location{
		Address:     AddressComponents(l.Address),
		Coordinates: Coordinates(l.Coordinates),
	}
}

func Order(o entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItem{
			ID:              item.ID,
			Name:            item.Name,
			Description:     optional(item.Description),
			Quantity:        item.Quantity,
			Weight:          item.Weight,
			Width:           item.Width,
			Height:          item.Height,
			Depth:           item.Depth,
			Packing:         optional(item.Packing),
			CategoryID:      optional(item.CategoryID),
			WeightUnitID:    optional(item.WeightUnitID),
			DimensionUnitID: optional(item.DimensionUnitID),
		})
	}

	return dto.Order{
		ID:                  o.ID,
		RequesterID:         o.RequesterID,
		Status:              dto.OrderStatus(o.Status),
		DeliverymanID:       o.DeliverymanID,
		TripID:              o.TripID,
		PickupDate:          o.PickupDate,
		PickupEstablishment: o.PickupEstablishment,
		Pickup:              Location(o.Pickup),
		Delivery:            Location(o.Delivery),
		Items:               items,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func Orders(orders []entities.Order) []dto.Order {
	out := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order(o))
	}
	return out
}

func PickupOffer(o entities.PickupOffer) dto.PickupOffer {
	return dto.PickupOffer{
		ID:            o.ID,
		OrderID:       o.OrderID,
		DeliverymanID: o.DeliverymanID,
		DeliveryValue: o.DeliveryValue,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func PickupOffers(offers []entities.PickupOffer) []dto.PickupOffer {
	out := make([]dto.PickupOffer, 0, len(offers))
	for _, o := range offers {
		out = append(out, PickupOffer(o))
	}
	return out
}

// optional - nil для нулевого значения, чтобы поле пропало из JSON.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
