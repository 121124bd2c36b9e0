package domain

import "time"

// ProgressStatus is one of the four production phases a progress log can
// report on. Multiple logs may share the same phase; they are never
// deduplicated, only filtered and prioritized for display.
type ProgressStatus string

const (
	ProgressStatusProducing           ProgressStatus = "PRODUCING"
	ProgressStatusProductionCompleted ProgressStatus = "PRODUCTION_COMPLETED"
	ProgressStatusDelivering          ProgressStatus = "DELIVERING"
	ProgressStatusInstalled           ProgressStatus = "INSTALLED"
)

// ProductionPhases lists the phases in production order.
func ProductionPhases() []ProgressStatus {
	return []ProgressStatus{
		ProgressStatusProducing,
		ProgressStatusProductionCompleted,
		ProgressStatusDelivering,
		ProgressStatusInstalled,
	}
}

type ProgressLog struct {
	ID          uint           `json:"id"`
	OrderID     uint           `json:"orderId"`
	Status      ProgressStatus `json:"status"`
	Description string         `json:"description"`

	// Images are fetched lazily per log; the field is populated from a
	// separate endpoint, not from the log listing itself.
	Images []ProgressLogImage `json:"images,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type ProgressLogImage struct {
	ID            uint   `json:"id"`
	ProgressLogID uint   `json:"progressLogId"`
	ImageKey      string `json:"imageUrl"`
	Name          string `json:"name"`
	ContentType   string `json:"contentType"`
	Size          int64  `json:"size"`
}
