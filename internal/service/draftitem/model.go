package draftitem

import "marketplace/internal/entities"

// itemRecord - то, что реально лежит в хранилище.
type itemRecord struct {
	LocalID         string  `json:"local_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Quantity        int     `json:"quantity"`
	Weight          float64 `json:"weight"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	Depth           float64 `json:"depth"`
	Packing         string  `json:"packing,omitempty"`
	CategoryID      int64   `json:"category_id,omitempty"`
	WeightUnitID    int64   `json:"weight_unit_id,omitempty"`
	DimensionUnitID int64   `json:"dimension_unit_id,omitempty"`
	ImageURI        *string `json:"image_uri,omitempty"`
}

func toRecord(i entities.DraftItem) itemRecord {
	return itemRecord{
		LocalID:         i.LocalID,
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
		ImageURI:        i.ImageURI,
	}
}

func toDomain(r itemRecord) entities.DraftItem {
	return entities.DraftItem{
		LocalID:         r.LocalID,
		Name:            r.Name,
		Description:     r.Description,
		Quantity:        r.Quantity,
		Weight:          r.Weight,
		Width:           r.Width,
		Height:          r.Height,
		Depth:           r.Depth,
		Packing:         r.Packing,
		CategoryID:      r.CategoryID,
		WeightUnitID:    r.WeightUnitID,
		DimensionUnitID: r.DimensionUnitID,
		ImageURI:        r.ImageURI,
	}
}
