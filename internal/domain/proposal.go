package domain

import "time"

type ProposalStatus string

const (
	ProposalStatusPending     ProposalStatus = "PENDING"
	ProposalStatusNegotiating ProposalStatus = "NEGOTIATING"
	ProposalStatusApproved    ProposalStatus = "APPROVED"
	ProposalStatusRejected    ProposalStatus = "REJECTED"
)

type PriceProposal struct {
	ID              uint           `json:"id"`
	DesignRequestID uint           `json:"designRequestId"`
	Status          ProposalStatus `json:"status"`

	TotalPrice    int64 `json:"totalPrice"`
	DepositAmount int64 `json:"depositAmount"`

	// Counter-offer fields, set when the customer pushed back.
	OfferedTotalPrice    *int64  `json:"offeredTotalPrice,omitempty"`
	OfferedDepositAmount *int64  `json:"offeredDepositAmount,omitempty"`
	RejectionReason      *string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Open reports whether the proposal still accepts approve/offer actions.
func (p *PriceProposal) Open() bool {
	return p.Status == ProposalStatusPending || p.Status == ProposalStatusNegotiating
}
