package offer

import "marketplace/internal/entities"

func ToDomain(o *PickupOfferDB) *entities.PickupOffer {
	if o == nil {
		return nil
	}
	return &entities.PickupOffer{
		ID:            o.ID,
		OrderID:       o.OrderID,
		DeliverymanID: o.DeliverymanID,
		DeliveryValue: o.DeliveryValue,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		DeletedAt:     o.DeletedAt,
	}
}
