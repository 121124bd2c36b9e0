package domain

import "time"

type ImpressionStatus string

const (
	ImpressionStatusPending   ImpressionStatus = "PENDING"
	ImpressionStatusResponded ImpressionStatus = "RESPONDED"
)

// Impression is customer feedback left on a completed order. Submissions are
// repeatable; an order may carry any number of them.
type Impression struct {
	ID      uint             `json:"id"`
	OrderID uint             `json:"orderId"`

	Rating   int     `json:"rating"`
	Comment  string  `json:"comment"`
	ImageKey *string `json:"image,omitempty"`

	Status        ImpressionStatus `json:"status"`
	AdminResponse *string          `json:"adminResponse,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
