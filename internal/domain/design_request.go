package domain

import "time"

type DesignRequestStatus string

const (
	DesignRequestStatusPending            DesignRequestStatus = "PENDING"
	DesignRequestStatusPricingNotified    DesignRequestStatus = "PRICING_NOTIFIED"
	DesignRequestStatusNegotiating        DesignRequestStatus = "NEGOTIATING"
	DesignRequestStatusApprovedPricing    DesignRequestStatus = "APPROVED_PRICING"
	DesignRequestStatusRejectedPricing    DesignRequestStatus = "REJECTED_PRICING"
	DesignRequestStatusDeposited          DesignRequestStatus = "DEPOSITED"
	DesignRequestStatusAssignedDesigner   DesignRequestStatus = "ASSIGNED_DESIGNER"
	DesignRequestStatusDesignerRejected   DesignRequestStatus = "DESIGNER_REJECTED"
	DesignRequestStatusProcessing         DesignRequestStatus = "PROCESSING"
	DesignRequestStatusDemoSubmitted      DesignRequestStatus = "DEMO_SUBMITTED"
	DesignRequestStatusRevisionRequested  DesignRequestStatus = "REVISION_REQUESTED"
	DesignRequestStatusWaitingFullPayment DesignRequestStatus = "WAITING_FULL_PAYMENT"
	DesignRequestStatusFullyPaid          DesignRequestStatus = "FULLY_PAID"
	DesignRequestStatusCompleted          DesignRequestStatus = "COMPLETED"
	DesignRequestStatusCancelled          DesignRequestStatus = "CANCELLED"
)

// InDemoLoop reports whether the request is in the demo review cycle where
// the customer may approve or reject the latest demo.
func (s DesignRequestStatus) InDemoLoop() bool {
	return s == DesignRequestStatusDemoSubmitted || s == DesignRequestStatusRevisionRequested
}

type CustomDesignRequest struct {
	ID         uint                `json:"id"`
	CustomerID uint                `json:"customerId"`
	Status     DesignRequestStatus `json:"status"`

	Requirement string `json:"requirement"`
	CompanyName string `json:"companyName"`

	// NeedSupport is the construction choice: nil means undecided, true
	// means an installation order must be created from this request.
	NeedSupport *bool `json:"isNeedSupport"`

	AssignedDesignerID *uint `json:"assignedDesignerId,omitempty"`

	Demos     []DemoDesign    `json:"demoDesigns,omitempty"`
	Proposals []PriceProposal `json:"priceProposals,omitempty"`

	FinalDesignImage     *string  `json:"finalDesignImage,omitempty"`
	FinalDesignSubImages []string `json:"finalDesignSubImages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LatestDemo returns the most recently created demo, the only one eligible
// for approve/reject while the request is in the demo loop. Demos are kept
// in creation order.
func (r *CustomDesignRequest) LatestDemo() *DemoDesign {
	if len(r.Demos) == 0 {
		return nil
	}
	return &r.Demos[len(r.Demos)-1]
}
