package draft_submit_post

import (
	"errors"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/service/composer"
)

var errUnknownDeliveryMode = errors.New("delivery.mode must be self or alternate")

func toDraft(draftID string, req dto.SubmitDraftRequest) (entities.OrderDraft, error) {
	draft := entities.OrderDraft{
		ID: draftID,
		Pickup: entities.PickupInfo{
			Date:          pointer.Get(req.Pickup.Date),
			Establishment: pointer.Get(req.Pickup.Establishment),
			Address:       convert.AddressComponentsFromDTO(req.Pickup.Address),
		},
		InvoiceFile: pointer.Get(req.InvoiceFile),
	}

	switch req.Delivery.Mode {
	case dto.DeliveryInputModeSelf:
		draft.Delivery = entities.SelfAddress{}
	case dto.DeliveryInputModeAlternate:
		draft.Delivery = entities.AlternateAddress{Address: convert.AddressComponentsFromDTO(req.Delivery.Address)}
	default:
		return entities.OrderDraft{}, errUnknownDeliveryMode
	}

	if req.Trip != nil {
		draft.TripBinding = &entities.TripBinding{
			DeliverymanID: req.Trip.DeliverymanID,
			TripID:        req.Trip.TripID,
		}
	}
	return draft, nil
}

func toSubmissionResponse(s *composer.Submission) dto.SubmissionResponse {
	resp := dto.SubmissionResponse{
		OrderID:      s.OrderID,
		ItemIDs:      s.ItemIDs,
		Status:       dto.OrderStatus(s.Status),
		Partial:      s.Partial(),
		ItemsCleared: s.ItemsCleared,
	}
	if resp.ItemIDs == nil {
		resp.ItemIDs = []int64{}
	}

	if len(s.Warnings) > 0 {
		warnings := make([]dto.SubmissionWarning, 0, len(s.Warnings))
		for _, w := range s.Warnings {
			warning := dto.SubmissionWarning{
				Step:    w.Step.String(),
				Message: w.Error(),
			}
			if w.Step == composer.StepUploadImage {
				warning.ItemID = pointer.To(w.ItemID)
				warning.ItemLocalID = pointer.To(w.ItemLocalID)
			}
			warnings = append(warnings, warning)
		}
		resp.Warnings = &warnings
	}
	return resp
}

func toValidationResponse(verr *composer.ValidationError) dto.ValidationErrorResponse {
	resp := dto.ValidationErrorResponse{Error: composer.ErrValidation.Error()}

	if len(verr.Fields) > 0 {
		fields := verr.Fields
		resp.Fields = &fields
	}
	if len(verr.Blocking) > 0 {
		blocking := make([]string, 0, len(verr.Blocking))
		for _, b := range verr.Blocking {
			blocking = append(blocking, string(b))
		}
		resp.Blocking = &blocking
	}
	return resp
}

func toSubmissionErrorResponse(serr *composer.SubmissionError) dto.SubmissionErrorResponse {
	resp := dto.SubmissionErrorResponse{
		Error:        serr.Err.Error(),
		Step:         serr.Step.String(),
		OrderCreated: serr.OrderCreated,
	}
	if serr.OrderCreated {
		resp.OrderID = pointer.To(serr.OrderID)
	}
	return resp
}
