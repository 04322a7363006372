package draftitem

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidSegment(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.Contains(s, ":")
}

func validateNamespace(ns entities.DraftNamespace) error {
	if ns.RequesterID <= 0 || !isValidSegment(ns.DraftID) {
		return ErrInvalidNamespace
	}
	return nil
}

func validateItem(item entities.DraftItem) error {
	switch {
	case !isValidSegment(item.LocalID):
		return ErrInvalidLocalID
	case strings.TrimSpace(item.Name) == "":
		return ErrInvalidName
	case item.Quantity < 1:
		return ErrInvalidQuantity
	case item.Weight <= 0:
		return ErrInvalidWeight
	case item.Width <= 0 || item.Height <= 0 || item.Depth <= 0:
		return ErrInvalidDimensions
	}
	return nil
}
