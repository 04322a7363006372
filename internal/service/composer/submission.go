package composer

import "marketplace/internal/entities"

// Submission - результат отправки, в которой заказ был создан.
type Submission struct {
	OrderID      string
	ItemIDs      []int64
	Status       entities.OrderStatus
	Warnings     []Warning
	ItemsCleared bool
}

func (s *Submission) Partial() bool {
	return len(s.Warnings) > 0
}
