package entities

import "fmt"

// DraftItem - позиция будущего заказа, сохраненная локально до того, как
// сам заказ создан. LocalID неизменяем: редактирование перезаписывает
// значение по тому же ключу.
type DraftItem struct {
	LocalID         string
	Name            string
	Description     string
	Quantity        int
	Weight          float64
	Width           float64
	Height          float64
	Depth           float64
	Packing         string
	CategoryID      int64
	WeightUnitID    int64
	DimensionUnitID int64
	ImageURI        *string
}

func (i DraftItem) HasImage() bool {
	return i.ImageURI != nil && *i.ImageURI != ""
}

// DraftNamespace изолирует позиции одного черновика одного заказчика.
type DraftNamespace struct {
	RequesterID int64
	DraftID     string
}

func (n DraftNamespace) Prefix() string {
	return fmt.Sprintf("draft:%d:%s:", n.RequesterID, n.DraftID)
}

func (n DraftNamespace) ItemKey(localID string) string {
	return n.Prefix() + "item:" + localID
}
