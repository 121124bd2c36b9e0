package domain

import "time"

type DemoStatus string

const (
	DemoStatusPending  DemoStatus = "PENDING"
	DemoStatusApproved DemoStatus = "APPROVED"
	DemoStatusRejected DemoStatus = "REJECTED"
)

type DemoDesign struct {
	ID              uint       `json:"id"`
	DesignRequestID uint       `json:"designRequestId"`
	Status          DemoStatus `json:"status"`

	// Image is the primary preview; sub-images are fetched lazily.
	Image               string   `json:"demoImage"`
	DesignerDescription string   `json:"designerDescription"`
	CustomerNote        *string  `json:"customerNote,omitempty"`
	FeedbackImages      []string `json:"feedbackImages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type DemoSubImage struct {
	ID          uint   `json:"id"`
	DemoID      uint   `json:"demoDesignId"`
	ImageKey    string `json:"imageUrl"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
