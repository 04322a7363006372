package composer

import (
	"strings"

	"marketplace/internal/entities"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateAddress проверяет обязательные поля адреса; complement
// необязателен.
func validateAddress(verr *ValidationError, prefix string, a entities.AddressComponents) {
	required := []struct {
		name  string
		value string
	}{
		{"postal_code", a.PostalCode},
		{"street", a.Street},
		{"number", a.Number},
		{"neighborhood", a.Neighborhood},
		{"city", a.City},
		{"state", a.State},
	}
	for _, f := range required {
		if blank(f.value) {
			verr.field(prefix+"."+f.name, "required")
		}
	}
}

// precheck - часть Validate, не зависящая от резолва адресов: улица, район,
// город и штат приходят из поиска по CEP и здесь не проверяются.
func precheck(draft entities.OrderDraft) error {
	verr := &ValidationError{}

	if draft.Pickup.Date.IsZero() {
		verr.field("pickup_date", "required")
	}
	if blank(draft.Pickup.Establishment) {
		verr.field("pickup_establishment", "required")
	}
	checkClientAddress(verr, "pickup", draft.Pickup.Address)

	switch mode := draft.Delivery.(type) {
	case entities.SelfAddress:
	case entities.AlternateAddress:
		checkClientAddress(verr, "delivery", mode.Address)
	default:
		verr.field("delivery_mode", "required")
	}

	if binding := draft.TripBinding; binding != nil {
		if binding.DeliverymanID <= 0 || blank(binding.TripID) {
			verr.field("trip_binding", "deliveryman and trip are required")
		}
	}

	if len(draft.Items) == 0 {
		verr.Blocking = append(verr.Blocking, BlockingNoItems)
	}
	if blank(draft.InvoiceFile) {
		verr.Blocking = append(verr.Blocking, BlockingNoInvoice)
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// checkClientAddress проверяет поля, которые вводит сам клиент.
func checkClientAddress(verr *ValidationError, prefix string, a entities.AddressComponents) {
	if blank(a.PostalCode) {
		verr.field(prefix+".postal_code", "required")
	}
	if blank(a.Number) {
		verr.field(prefix+".number", "required")
	}
}

// Validate возвращает *ValidationError, если черновик нельзя отправлять, и
// nil в противном случае.
func Validate(draft entities.OrderDraft) error {
	verr := &ValidationError{}

	if draft.Pickup.Date.IsZero() {
		verr.field("pickup_date", "required")
	}
	if blank(draft.Pickup.Establishment) {
		verr.field("pickup_establishment", "required")
	}
	validateAddress(verr, "pickup", draft.Pickup.Address)
	if !blank(draft.Pickup.Address.PostalCode) && !draft.Pickup.Address.IsResolved() {
		verr.Blocking = append(verr.Blocking, BlockingPickupUnresolved)
	}

	switch mode := draft.Delivery.(type) {
	case entities.SelfAddress:
	case entities.AlternateAddress:
		validateAddress(verr, "delivery", mode.Address)
		if !blank(mode.Address.PostalCode) && !mode.Address.IsResolved() {
			verr.Blocking = append(verr.Blocking, BlockingDeliveryUnresolved)
		}
	default:
		verr.field("delivery_mode", "required")
	}

	if binding := draft.TripBinding; binding != nil {
		if binding.DeliverymanID <= 0 || blank(binding.TripID) {
			verr.field("trip_binding", "deliveryman and trip are required")
		}
	}

	if len(draft.Items) == 0 {
		verr.Blocking = append(verr.Blocking, BlockingNoItems)
	}
	if blank(draft.InvoiceFile) {
		verr.Blocking = append(verr.Blocking, BlockingNoInvoice)
	}

	if verr.empty() {
		return nil
	}
	return verr
}
